package order_completed

import (
	"context"
	"time"

	"candydelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CompleteOrder(ctx context.Context, courierID, orderID int64, completeTime time.Time) (int64, error)
}
