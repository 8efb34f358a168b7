// Package dispatch — чистая бизнес-логика распределения заказов: подбор и
// назначение заказов курьеру, пересчёт назначений после изменения атрибутов
// курьера и расчёт рейтинга/заработка. Пакет не ходит в БД: данные загружает
// и персистит вызывающий слой внутри одной транзакции.
package dispatch

import (
	"sort"

	"candydelivery/internal/entities"
)

// FilterEligible отбирает заказы, чьи окна доставки проходят по графику
// работы курьера. Проверки нижней и верхней границы — два независимых
// условия существования: заказ может пройти нижнюю границу по одному
// рабочему окну, а верхнюю — по другому. Так фильтровала выборка в
// историческом поведении сервиса, и клиенты на него полагаются.
func FilterEligible(working []entities.TimeWindow, candidates []entities.Order) []entities.Order {
	if len(working) == 0 || len(candidates) == 0 {
		return nil
	}

	eligible := make([]entities.Order, 0, len(candidates))
	for _, order := range candidates {
		if fitsFromBorder(working, order.DeliveryHours) && fitsToBorder(working, order.DeliveryHours) {
			eligible = append(eligible, order)
		}
	}
	return eligible
}

// Assign жадно набирает заказы по возрастанию веса, пока позволяет остаток
// грузоподъёмности. Первый не поместившийся заказ останавливает весь
// перебор: дальше заказы только тяжелее. Возвращает id принятых заказов
// в порядке принятия.
func Assign(courierType entities.CourierType, eligible, alreadyAssigned []entities.Order) []int64 {
	remained := courierType.MaxWeight()
	for _, order := range alreadyAssigned {
		remained -= order.Weight
	}
	if remained <= 0 {
		return nil
	}

	sorted := make([]entities.Order, len(eligible))
	copy(sorted, eligible)
	// стабильная сортировка: при равном весе сохраняется порядок по id
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	ids := make([]int64, 0, len(sorted))
	for _, order := range sorted {
		if remained-order.Weight < 0 {
			break
		}
		ids = append(ids, order.ID)
		remained -= order.Weight
	}
	return ids
}

func fitsFromBorder(working, delivery []entities.TimeWindow) bool {
	for _, d := range delivery {
		for _, w := range working {
			if d.FromBorder >= w.FromBorder {
				return true
			}
		}
	}
	return false
}

func fitsToBorder(working, delivery []entities.TimeWindow) bool {
	for _, d := range delivery {
		for _, w := range working {
			if d.ToBorder <= w.ToBorder {
				return true
			}
		}
	}
	return false
}
