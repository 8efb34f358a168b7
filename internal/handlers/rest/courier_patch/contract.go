//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_patch_test
package courier_patch

import (
	"context"

	"candydelivery/internal/entities"
	"candydelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
}
