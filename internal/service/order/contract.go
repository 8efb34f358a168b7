//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"candydelivery/internal/entities"
)

type Repository interface {
	CreateBatch(ctx context.Context, orders []entities.Order) error
	GetCourierForUpdate(ctx context.Context, courierID int64) (*entities.Courier, error)
	GetUnassignedInRegionsForUpdate(ctx context.Context, regions []int32) ([]entities.Order, error)
	GetByCourier(ctx context.Context, courierID int64) ([]entities.Order, error)
	MarkAssigned(ctx context.Context, orderIDs []int64, courierID int64, assignedAt time.Time, deliveryType entities.CourierType) error
	Complete(ctx context.Context, orderID, courierID int64, completedAt time.Time) error
	CountUnassigned(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
