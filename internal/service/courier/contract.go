//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"candydelivery/internal/entities"
)

type Repository interface {
	CreateBatch(ctx context.Context, couriers []entities.Courier) error
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)

	GetActiveOrdersForUpdate(ctx context.Context, courierID int64) ([]entities.Order, error)
	GetCompletedOrders(ctx context.Context, courierID int64) ([]entities.Order, error)
	UnassignOrders(ctx context.Context, orderIDs []int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
