package dispatch

import (
	"sort"

	"candydelivery/internal/entities"
)

// OrdersToDrop возвращает id активных (назначенных и не завершённых) заказов,
// которые курьер должен отдать после изменения своих атрибутов. Правила
// независимы, результат — их объединение. Незаполненные поля update не
// трогают соответствующий атрибут и его заказы.
func OrdersToDrop(active []entities.Order, currentType entities.CourierType, update entities.CourierModify) map[int64]struct{} {
	drop := make(map[int64]struct{})
	if len(active) == 0 {
		return drop
	}

	if update.Type != nil {
		dropForSmallerCapacity(drop, active, currentType, *update.Type)
	}

	if len(update.Regions) > 0 {
		newRegions := make(map[int32]struct{}, len(update.Regions))
		for _, region := range update.Regions {
			newRegions[region] = struct{}{}
		}
		for _, order := range active {
			if _, ok := newRegions[order.Region]; !ok {
				drop[order.ID] = struct{}{}
			}
		}
	}

	if len(update.WorkingHours) > 0 {
		for _, order := range active {
			if !orderFits(update.WorkingHours, order.DeliveryHours) {
				drop[order.ID] = struct{}{}
			}
		}
	}

	return drop
}

// dropForSmallerCapacity снимает самые тяжёлые заказы, пока освобождённый
// вес не перекроет потерю грузоподъёмности. Каждый пройденный заказ попадает
// в drop, включая тот, на котором delta уходит в минус — после него перебор
// останавливается.
func dropForSmallerCapacity(drop map[int64]struct{}, active []entities.Order, currentType, newType entities.CourierType) {
	oldMax := currentType.MaxWeight()
	newMax := newType.MaxWeight()
	if newMax >= oldMax {
		return
	}

	byWeightDesc := make([]entities.Order, len(active))
	copy(byWeightDesc, active)
	sort.SliceStable(byWeightDesc, func(i, j int) bool {
		return byWeightDesc[i].Weight > byWeightDesc[j].Weight
	})

	delta := oldMax - newMax
	for _, order := range byWeightDesc {
		drop[order.ID] = struct{}{}
		delta -= order.Weight
		if delta < 0 {
			break
		}
	}
}

// orderFits — хотя бы одно окно доставки целиком входит в одно из новых
// рабочих окон. В отличие от FilterEligible здесь обе границы проверяются
// против одного и того же окна.
func orderFits(working, delivery []entities.TimeWindow) bool {
	for _, d := range delivery {
		for _, w := range working {
			if w.Covers(d) {
				return true
			}
		}
	}
	return false
}
