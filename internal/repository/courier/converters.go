package courier

import (
	"candydelivery/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:           c.ID,
		Type:         entities.CourierType(c.Type),
		Regions:      c.Regions,
		WorkingHours: toWindows(c.HoursFrom, c.HoursTo),
	}
}

func ToOrderDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:            o.ID,
		Weight:        o.Weight,
		Region:        o.Region,
		DeliveryHours: toWindows(o.HoursFrom, o.HoursTo),
		CourierID:     o.CourierID,
		AssignedAt:    o.AssignedAt,
		CompletedAt:   o.CompletedAt,
	}
	if o.DeliveryType != nil {
		deliveryType := entities.CourierType(*o.DeliveryType)
		order.DeliveryType = &deliveryType
	}
	return order
}

func ToOrderDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToOrderDomain(&orderDB)
	}
	return result
}

// toWindows собирает пары границ обратно в окна, порядок соответствует
// порядку вставки строк.
func toWindows(from, to []int32) []entities.TimeWindow {
	if len(from) == 0 || len(from) != len(to) {
		return []entities.TimeWindow{}
	}

	windows := make([]entities.TimeWindow, len(from))
	for i := range from {
		windows[i] = entities.TimeWindow{
			FromBorder: int(from[i]),
			ToBorder:   int(to[i]),
		}
	}
	return windows
}
