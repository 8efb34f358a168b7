package entities

import "time"

type Order struct {
	ID            int64
	Weight        float64
	Region        int32
	DeliveryHours []TimeWindow

	// Поля назначения. DeliveryType фиксируется в момент назначения и
	// не меняется при последующей смене типа курьера.
	CourierID    *int64
	AssignedAt   *time.Time
	CompletedAt  *time.Time
	DeliveryType *CourierType
}

// Assignment — результат одного прогона назначения: принятые заказы и общее
// для них время назначения. AssignedAt равен nil, когда ничего не принято.
type Assignment struct {
	CourierID  int64
	OrderIDs   []int64
	AssignedAt *time.Time
}

func (o Order) Assigned() bool {
	return o.CourierID != nil
}

func (o Order) Completed() bool {
	return o.CompletedAt != nil
}
