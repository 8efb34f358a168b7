// Package dto — схемы HTTP-запросов и ответов. Окна времени ходят по сети
// строками "HH:MM-HH:MM", парсинг в доменные окна — на границе хендлера.
package dto

type CreateCourierItem struct {
	CourierID    int64    `json:"courier_id" validate:"required,gt=0"`
	CourierType  string   `json:"courier_type" validate:"required,oneof=foot bike car"`
	Regions      []int32  `json:"regions" validate:"required,min=1,dive,gte=0"`
	WorkingHours []string `json:"working_hours" validate:"required,min=1,dive,timewindow"`
}

type CreateCouriersRequest struct {
	Data []CreateCourierItem `json:"data" validate:"required,min=1"`
}

type CourierIDItem struct {
	ID int64 `json:"id"`
}

type CreateCouriersResponse struct {
	Couriers []CourierIDItem `json:"couriers"`
}

type UpdateCourierRequest struct {
	CourierType  *string  `json:"courier_type,omitempty" validate:"omitempty,oneof=foot bike car"`
	Regions      []int32  `json:"regions,omitempty" validate:"omitempty,min=1,dive,gte=0"`
	WorkingHours []string `json:"working_hours,omitempty" validate:"omitempty,min=1,dive,timewindow"`
}

type Courier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int32  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

type CourierStats struct {
	Courier
	Rating   *float64 `json:"rating,omitempty"`
	Earnings *int     `json:"earnings,omitempty"`
}

type CreateOrderItem struct {
	OrderID       int64    `json:"order_id" validate:"required,gt=0"`
	Weight        float64  `json:"weight" validate:"required,gt=0"`
	Region        int32    `json:"region" validate:"gte=0"`
	DeliveryHours []string `json:"delivery_hours" validate:"required,min=1,dive,timewindow"`
}

type CreateOrdersRequest struct {
	Data []CreateOrderItem `json:"data" validate:"required,min=1"`
}

type OrderIDItem struct {
	ID int64 `json:"id"`
}

type CreateOrdersResponse struct {
	Orders []OrderIDItem `json:"orders"`
}

type AssignOrdersRequest struct {
	CourierID int64 `json:"courier_id" validate:"required,gt=0"`
}

type AssignOrdersResponse struct {
	Orders     []OrderIDItem `json:"orders"`
	AssignTime *string       `json:"assign_time"`
}

type CompleteOrderRequest struct {
	CourierID    int64  `json:"courier_id" validate:"required,gt=0"`
	OrderID      int64  `json:"order_id" validate:"required,gt=0"`
	CompleteTime string `json:"complete_time" validate:"required"`
}

type CompleteOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// ValidationError перечисляет id элементов пачки, не прошедших проверку.
// Заполняется ровно одно из полей.
type ValidationError struct {
	Couriers []CourierIDItem `json:"couriers,omitempty"`
	Orders   []OrderIDItem   `json:"orders,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ValidationErrorResponse struct {
	ValidationError ValidationError `json:"validation_error"`
}
