package courier

import (
	"context"
	"fmt"
	"sort"

	"github.com/AlekSi/pointer"
	"candydelivery/internal/dispatch"
	"candydelivery/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Courier) RegisterCouriers(ctx context.Context, couriers []entities.Courier) ([]int64, error) {
	if len(couriers) == 0 {
		return nil, ErrNoCouriers
	}

	for _, c := range couriers {
		if err := validateCourier(c); err != nil {
			return nil, fmt.Errorf("courier %d: %w", c.ID, err)
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.CreateBatch(ctx, couriers)
	})
	if err != nil {
		return nil, fmt.Errorf("register couriers: %w", err)
	}

	ids := make([]int64, len(couriers))
	for i, c := range couriers {
		ids[i] = c.ID
	}
	return ids, nil
}

// UpdateCourier меняет атрибуты курьера и в той же транзакции снимает
// назначенные заказы, которые перестали помещаться в новые атрибуты.
// Пустое обновление допустимо и возвращает курьера как есть.
func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, courierModify.ID)
		if err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		if courierModify.Type == nil && len(courierModify.Regions) == 0 && len(courierModify.WorkingHours) == 0 {
			updated = current
			return nil
		}

		active, err := s.repository.GetActiveOrdersForUpdate(ctx, current.ID)
		if err != nil {
			return fmt.Errorf("lock active orders: %w", err)
		}

		if drop := dispatch.OrdersToDrop(active, current.Type, courierModify); len(drop) > 0 {
			ids := make([]int64, 0, len(drop))
			for id := range drop {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

			if err := s.repository.UnassignOrders(ctx, ids); err != nil {
				return fmt.Errorf("unassign dropped orders: %w", err)
			}
		}

		updated, err = s.repository.Update(ctx, courierModify)
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if !isValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courier, nil
}

// GetCourierStats дополняет курьера рейтингом и заработком. Оба показателя
// присутствуют только когда у курьера есть завершённые заказы.
func (s *Courier) GetCourierStats(ctx context.Context, id int64) (*entities.CourierStats, error) {
	if !isValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	completed, err := s.repository.GetCompletedOrders(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get completed orders: %w", err)
	}

	stats := entities.CourierStats{Courier: *courier}
	if len(completed) > 0 {
		stats.Rating = pointer.To(dispatch.Rating(completed))
		stats.Earnings = pointer.To(dispatch.Earnings(completed))
	}
	return &stats, nil
}
