package order

import "candydelivery/internal/entities"

func validateOrder(o entities.Order) error {
	switch {
	case o.ID <= 0:
		return ErrInvalidOrderID
	case o.Weight <= 0:
		return ErrInvalidWeight
	case o.Region < 0:
		return ErrInvalidRegion
	case len(o.DeliveryHours) == 0 || !isValidWindows(o.DeliveryHours):
		return ErrInvalidDeliveryHours
	default:
		return nil
	}
}

func isValidWindows(windows []entities.TimeWindow) bool {
	for _, w := range windows {
		if w.FromBorder >= w.ToBorder {
			return false
		}
	}
	return true
}

func isValidCourierID(id int64) bool {
	return id > 0
}
