package dispatch

import (
	"math"
	"sort"

	"candydelivery/internal/entities"
)

const (
	// orderBasePay — базовая ставка за доставленный заказ, умножается на
	// коэффициент типа доставки.
	orderBasePay = 500

	// ratingWindowSeconds — час в секундах, опорная длительность рейтинга.
	ratingWindowSeconds = 3600
)

// Earnings — суммарный заработок по завершённым заказам. Коэффициент берётся
// из типа доставки, зафиксированного на момент назначения заказа.
func Earnings(completed []entities.Order) int {
	money := 0
	for _, order := range completed {
		if order.DeliveryType == nil {
			continue
		}
		money += orderBasePay * order.DeliveryType.PayCoefficient()
	}
	return money
}

// Rating оценивает темп доставки: заказы группируются по регионам, внутри
// региона считается средняя длительность между доставками (первая — от
// момента назначения), берётся регион с минимальным средним и нормируется
// к часу. Результат лежит в [0, 5], для пустого входа — 0.
func Rating(completed []entities.Order) float64 {
	if len(completed) == 0 {
		return 0
	}

	byRegion := make(map[int32][]entities.Order)
	for _, order := range completed {
		byRegion[order.Region] = append(byRegion[order.Region], order)
	}

	minAvg := math.MaxFloat64
	for _, regionOrders := range byRegion {
		sort.SliceStable(regionOrders, func(i, j int) bool {
			return regionOrders[i].CompletedAt.Before(*regionOrders[j].CompletedAt)
		})

		var total float64
		for i, order := range regionOrders {
			if i == 0 {
				total += order.CompletedAt.Sub(*order.AssignedAt).Seconds()
				continue
			}
			total += order.CompletedAt.Sub(*regionOrders[i-1].CompletedAt).Seconds()
		}

		avg := total / float64(len(regionOrders))
		if avg < minAvg {
			minAvg = avg
		}
	}

	t := math.Min(minAvg, ratingWindowSeconds)
	raw := (ratingWindowSeconds - t) / ratingWindowSeconds * 5

	return math.Round(raw*100) / 100
}
