package entities

type CourierType string

const (
	Foot CourierType = "foot"
	Bike CourierType = "bike"
	Car  CourierType = "car"
)

func (t CourierType) String() string {
	return string(t)
}

func (t CourierType) IsValid() bool {
	switch t {
	case Foot, Bike, Car:
		return true
	default:
		return false
	}
}

// MaxWeight — суммарный вес заказов, который курьер данного типа может нести.
func (t CourierType) MaxWeight() float64 {
	switch t {
	case Foot:
		return 10
	case Bike:
		return 15
	case Car:
		return 50
	default:
		return 0
	}
}

// PayCoefficient — коэффициент оплаты за один доставленный заказ.
func (t CourierType) PayCoefficient() int {
	switch t {
	case Foot:
		return 2
	case Bike:
		return 5
	case Car:
		return 9
	default:
		return 0
	}
}

type Courier struct {
	ID           int64
	Type         CourierType
	Regions      []int32
	WorkingHours []TimeWindow
}

// CourierStats — курьер вместе с показателями по завершённым заказам.
// Rating и Earnings заполнены только когда завершённые заказы есть.
type CourierStats struct {
	Courier
	Rating   *float64
	Earnings *int
}

// CourierModify описывает частичное обновление курьера.
// nil или пустой срез означает "поле не трогаем", как в PATCH-запросе.
type CourierModify struct {
	ID           int64
	Type         *CourierType
	Regions      []int32
	WorkingHours []TimeWindow
}
