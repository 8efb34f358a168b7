package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"candydelivery/internal/entities"
	"candydelivery/internal/repository"
	"candydelivery/internal/service/order"
)

const orderColumns = `
	o.id,
	o.weight,
	o.region,
	COALESCE((SELECT array_agg(h.from_border ORDER BY h.id) FROM order_delivery_hours h WHERE h.order_id = o.id), '{}'),
	COALESCE((SELECT array_agg(h.to_border ORDER BY h.id) FROM order_delivery_hours h WHERE h.order_id = o.id), '{}'),
	o.courier_id,
	o.assigned_at,
	o.completed_at,
	o.delivery_type`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateBatch(ctx context.Context, orders []entities.Order) error {
	orderQuery := `INSERT INTO orders (id, weight, region) VALUES ($1, $2, $3)`
	hoursQuery := `INSERT INTO order_delivery_hours (order_id, from_border, to_border) VALUES ($1, $2, $3)`

	for _, o := range orders {
		if _, err := r.querier.Exec(ctx, orderQuery, o.ID, o.Weight, o.Region); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return fmt.Errorf("order %d: %w", o.ID, order.ErrConflict)
			}
			return fmt.Errorf("unexpected order repository createbatch error: %w", err)
		}

		for _, w := range o.DeliveryHours {
			if _, err := r.querier.Exec(ctx, hoursQuery, o.ID, w.FromBorder, w.ToBorder); err != nil {
				return fmt.Errorf("unexpected order repository createbatch error: %w", err)
			}
		}
	}
	return nil
}

func (r *Repository) GetCourierForUpdate(ctx context.Context, courierID int64) (*entities.Courier, error) {
	query := `
	SELECT
		c.id,
		c.type,
		COALESCE((SELECT array_agg(r.region ORDER BY r.region) FROM courier_regions r WHERE r.courier_id = c.id), '{}'),
		COALESCE((SELECT array_agg(h.from_border ORDER BY h.id) FROM courier_working_hours h WHERE h.courier_id = c.id), '{}'),
		COALESCE((SELECT array_agg(h.to_border ORDER BY h.id) FROM courier_working_hours h WHERE h.courier_id = c.id), '{}')
	FROM couriers c
	WHERE c.id = $1
	FOR UPDATE OF c`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, courierID).
		Scan(
			&courierModel.ID,
			&courierModel.Type,
			&courierModel.Regions,
			&courierModel.HoursFrom,
			&courierModel.HoursTo,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getcourier error: %w", err)
	}

	return ToCourierDomain(&courierModel), nil
}

func (r *Repository) GetUnassignedInRegionsForUpdate(ctx context.Context, regions []int32) ([]entities.Order, error) {
	query := `SELECT` + orderColumns + `
		FROM orders o
		WHERE o.courier_id IS NULL AND o.region = ANY($1)
		ORDER BY o.id
		FOR UPDATE OF o`

	return r.getOrders(ctx, query, regions)
}

func (r *Repository) GetByCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	query := `SELECT` + orderColumns + `
		FROM orders o
		WHERE o.courier_id = $1
		ORDER BY o.id`

	return r.getOrders(ctx, query, courierID)
}

func (r *Repository) MarkAssigned(ctx context.Context, orderIDs []int64, courierID int64, assignedAt time.Time, deliveryType entities.CourierType) error {
	query := `
		UPDATE orders
		SET courier_id = $2, assigned_at = $3, delivery_type = $4, updated_at = NOW()
		WHERE id = ANY($1)`

	if _, err := r.querier.Exec(ctx, query, orderIDs, courierID, assignedAt, deliveryType.String()); err != nil {
		return fmt.Errorf("unexpected order repository markassigned error: %w", err)
	}
	return nil
}

// Complete закрывает заказ по паре (id, courier_id). Несовпавшая пара
// неотличима от отсутствующего заказа.
func (r *Repository) Complete(ctx context.Context, orderID, courierID int64, completedAt time.Time) error {
	query := `
		UPDATE orders
		SET completed_at = $3, updated_at = NOW()
		WHERE id = $1 AND courier_id = $2`

	result, err := r.querier.Exec(ctx, query, orderID, courierID, completedAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository complete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) CountUnassigned(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE courier_id IS NULL`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected order repository countunassigned error: %w", err)
	}
	return count, nil
}

func (r *Repository) getOrders(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getorders error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Weight,
			&orderModel.Region,
			&orderModel.HoursFrom,
			&orderModel.HoursTo,
			&orderModel.CourierID,
			&orderModel.AssignedAt,
			&orderModel.CompletedAt,
			&orderModel.DeliveryType,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getorders error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getorders error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
