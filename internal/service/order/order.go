package order

import (
	"context"
	"fmt"
	"time"

	"candydelivery/internal/dispatch"
	"candydelivery/internal/entities"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Order) RegisterOrders(ctx context.Context, orders []entities.Order) ([]int64, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	for _, o := range orders {
		if err := validateOrder(o); err != nil {
			return nil, fmt.Errorf("order %d: %w", o.ID, err)
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.CreateBatch(ctx, orders)
	})
	if err != nil {
		return nil, fmt.Errorf("register orders: %w", err)
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids, nil
}

// AssignOrders подбирает курьеру свободные заказы его регионов и графика.
// Вся выборка и назначение идут в одной транзакции под блокировкой строки
// курьера, поэтому два конкурентных назначения одному курьеру не
// перемешиваются. Время назначения — бизнес-событие, поэтому ставится тут,
// а не в БД.
func (s *Order) AssignOrders(ctx context.Context, courierID int64) (*entities.Assignment, error) {
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	assignTime := time.Now().UTC()
	assignment := entities.Assignment{CourierID: courierID, OrderIDs: []int64{}}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetCourierForUpdate(ctx, courierID)
		if err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		candidates, err := s.repository.GetUnassignedInRegionsForUpdate(ctx, courier.Regions)
		if err != nil {
			return fmt.Errorf("lock unassigned orders: %w", err)
		}

		eligible := dispatch.FilterEligible(courier.WorkingHours, candidates)
		if len(eligible) == 0 {
			return nil
		}

		// остаток грузоподъёмности считается по всем заказам курьера,
		// завершённые тоже занимают вес
		carried, err := s.repository.GetByCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get carried orders: %w", err)
		}

		ids := dispatch.Assign(courier.Type, eligible, carried)
		if len(ids) == 0 {
			return nil
		}

		if err := s.repository.MarkAssigned(ctx, ids, courierID, assignTime, courier.Type); err != nil {
			return fmt.Errorf("mark assigned: %w", err)
		}

		assignment.OrderIDs = ids
		assignment.AssignedAt = &assignTime
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CompleteOrder отмечает заказ завершённым. Пара (orderID, courierID) должна
// совпасть с назначением, иначе заказ считается не найденным. Повторное
// завершение перезаписывает время.
func (s *Order) CompleteOrder(ctx context.Context, courierID, orderID int64, completeTime time.Time) (int64, error) {
	if !isValidCourierID(courierID) {
		return 0, ErrInvalidCourierID
	}
	if orderID <= 0 {
		return 0, ErrInvalidOrderID
	}

	err := s.repository.Complete(ctx, orderID, courierID, completeTime.UTC())
	if err != nil {
		return 0, fmt.Errorf("complete order: %w", err)
	}
	return orderID, nil
}

// CountUnassignedOrders — размер очереди заказов без курьера, для фоновых
// метрик.
func (s *Order) CountUnassignedOrders(ctx context.Context) (int64, error) {
	count, err := s.repository.CountUnassigned(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unassigned orders: %w", err)
	}
	return count, nil
}
