package courier

import "candydelivery/internal/entities"

func validateCourier(c entities.Courier) error {
	switch {
	case !isValidCourierID(c.ID):
		return ErrInvalidCourierID
	case !c.Type.IsValid():
		return ErrInvalidCourierType
	case len(c.Regions) == 0 || !isValidRegions(c.Regions):
		return ErrInvalidRegions
	case len(c.WorkingHours) == 0 || !isValidWindows(c.WorkingHours):
		return ErrInvalidWorkingHours
	default:
		return nil
	}
}

func validateModify(m entities.CourierModify) error {
	switch {
	case !isValidCourierID(m.ID):
		return ErrInvalidCourierID
	case m.Type != nil && !m.Type.IsValid():
		return ErrInvalidCourierType
	case !isValidRegions(m.Regions):
		return ErrInvalidRegions
	case !isValidWindows(m.WorkingHours):
		return ErrInvalidWorkingHours
	default:
		return nil
	}
}

func isValidCourierID(id int64) bool {
	return id > 0
}

func isValidRegions(regions []int32) bool {
	for _, region := range regions {
		if region < 0 {
			return false
		}
	}
	return true
}

func isValidWindows(windows []entities.TimeWindow) bool {
	for _, w := range windows {
		if w.FromBorder >= w.ToBorder {
			return false
		}
	}
	return true
}
