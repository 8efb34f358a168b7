package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"candydelivery/internal/entities"
	"candydelivery/internal/repository"
	"candydelivery/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `
	c.id,
	c.type,
	COALESCE((SELECT array_agg(r.region ORDER BY r.region) FROM courier_regions r WHERE r.courier_id = c.id), '{}'),
	COALESCE((SELECT array_agg(h.from_border ORDER BY h.id) FROM courier_working_hours h WHERE h.courier_id = c.id), '{}'),
	COALESCE((SELECT array_agg(h.to_border ORDER BY h.id) FROM courier_working_hours h WHERE h.courier_id = c.id), '{}'),
	c.created_at,
	c.updated_at`

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

func (r *Repository) CreateBatch(ctx context.Context, couriers []entities.Courier) error {
	courierQuery := `INSERT INTO couriers (id, type) VALUES ($1, $2)`
	regionQuery := `INSERT INTO courier_regions (courier_id, region) VALUES ($1, $2)`
	hoursQuery := `INSERT INTO courier_working_hours (courier_id, from_border, to_border) VALUES ($1, $2, $3)`

	for _, c := range couriers {
		if _, err := r.querier.Exec(ctx, courierQuery, c.ID, c.Type.String()); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return fmt.Errorf("courier %d: %w", c.ID, courier.ErrConflict)
			}
			return fmt.Errorf("unexpected courier repository createbatch error: %w", err)
		}

		for _, region := range c.Regions {
			if _, err := r.querier.Exec(ctx, regionQuery, c.ID, region); err != nil {
				return fmt.Errorf("unexpected courier repository createbatch error: %w", err)
			}
		}

		for _, w := range c.WorkingHours {
			if _, err := r.querier.Exec(ctx, hoursQuery, c.ID, w.FromBorder, w.ToBorder); err != nil {
				return fmt.Errorf("unexpected courier repository createbatch error: %w", err)
			}
		}
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT` + courierColumns + `
		FROM couriers c
		WHERE c.id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT` + courierColumns + `
		FROM couriers c
		WHERE c.id = $1
		FOR UPDATE OF c`

	return r.getOne(ctx, query, id)
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	builder := qb.
		Update("couriers").
		Set("updated_at", sq.Expr("NOW()"))

	if courierModifyEntity.Type != nil {
		builder = builder.Set("type", courierModifyEntity.Type.String())
	}

	builder = builder.
		Where(sq.Eq{"id": courierModifyEntity.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var id int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	if len(courierModifyEntity.Regions) > 0 {
		if err := r.replaceRegions(ctx, id, courierModifyEntity.Regions); err != nil {
			return nil, err
		}
	}
	if len(courierModifyEntity.WorkingHours) > 0 {
		if err := r.replaceWorkingHours(ctx, id, courierModifyEntity.WorkingHours); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetActiveOrdersForUpdate(ctx context.Context, courierID int64) ([]entities.Order, error) {
	query := `SELECT` + orderColumns + `
		FROM orders o
		WHERE o.courier_id = $1 AND o.completed_at IS NULL
		ORDER BY o.id
		FOR UPDATE OF o`

	return r.getOrders(ctx, query, courierID)
}

func (r *Repository) GetCompletedOrders(ctx context.Context, courierID int64) ([]entities.Order, error) {
	query := `SELECT` + orderColumns + `
		FROM orders o
		WHERE o.courier_id = $1 AND o.completed_at IS NOT NULL
		ORDER BY o.id`

	return r.getOrders(ctx, query, courierID)
}

// UnassignOrders возвращает заказы в свободный пул. Тип доставки не
// очищается: по нему считается заработок уже завершённых заказов.
func (r *Repository) UnassignOrders(ctx context.Context, orderIDs []int64) error {
	query := `
		UPDATE orders
		SET courier_id = NULL, assigned_at = NULL, updated_at = NOW()
		WHERE id = ANY($1)`

	if _, err := r.querier.Exec(ctx, query, orderIDs); err != nil {
		return fmt.Errorf("unexpected courier repository unassignorders error: %w", err)
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, id int64) (*entities.Courier, error) {
	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Type,
			&courierModel.Regions,
			&courierModel.HoursFrom,
			&courierModel.HoursTo,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) getOrders(ctx context.Context, query string, courierID int64) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getorders error: %w", err)
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
			return nil, fmt.Errorf("unexpected courier repository getorders error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getorders error: %w", err)
	}

	return ToOrderDomainList(orderModels), nil
}

func (r *Repository) replaceRegions(ctx context.Context, courierID int64, regions []int32) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM courier_regions WHERE courier_id = $1`, courierID); err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	query := `INSERT INTO courier_regions (courier_id, region) VALUES ($1, $2)`
	for _, region := range regions {
		if _, err := r.querier.Exec(ctx, query, courierID, region); err != nil {
			return fmt.Errorf("unexpected courier repository update error: %w", err)
		}
	}
	return nil
}

func (r *Repository) replaceWorkingHours(ctx context.Context, courierID int64, windows []entities.TimeWindow) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM courier_working_hours WHERE courier_id = $1`, courierID); err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	query := `INSERT INTO courier_working_hours (courier_id, from_border, to_border) VALUES ($1, $2, $3)`
	for _, w := range windows {
		if _, err := r.querier.Exec(ctx, query, courierID, w.FromBorder, w.ToBorder); err != nil {
			return fmt.Errorf("unexpected courier repository update error: %w", err)
		}
	}
	return nil
}
