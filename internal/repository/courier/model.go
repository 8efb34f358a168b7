package courier

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type CourierDB struct {
	ID        int64
	Type      string
	Regions   []int32
	HoursFrom []int32
	HoursTo   []int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderDB struct {
	ID           int64
	Weight       float64
	Region       int32
	HoursFrom    []int32
	HoursTo      []int32
	CourierID    *int64
	AssignedAt   *time.Time
	CompletedAt  *time.Time
	DeliveryType *string
}
