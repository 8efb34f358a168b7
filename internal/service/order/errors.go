package order

import "errors"

var (
	ErrNoOrders             = errors.New("no orders to register")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidWeight        = errors.New("invalid order weight")
	ErrInvalidRegion        = errors.New("invalid order region")
	ErrInvalidDeliveryHours = errors.New("invalid delivery hours")
	ErrInvalidCourierID     = errors.New("invalid courier id")

	ErrOrderNotFound   = errors.New("order not found")
	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("resource already exists")
)
