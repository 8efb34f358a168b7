package app

import (
	"context"
	"time"

	"candydelivery/internal/handlers/rest/courier_get"
	"candydelivery/internal/handlers/rest/courier_patch"
	"candydelivery/internal/handlers/rest/couriers_post"
	"candydelivery/internal/handlers/rest/orders_assign_post"
	"candydelivery/internal/handlers/rest/orders_complete_post"
	"candydelivery/internal/handlers/rest/orders_post"
	"candydelivery/internal/handlers/tasks/backlog_monitor"
	"candydelivery/internal/pkg/config"
	courierRepo "candydelivery/internal/repository/courier"
	orderRepo "candydelivery/internal/repository/order"
	courierService "candydelivery/internal/service/courier"
	orderService "candydelivery/internal/service/order"
	"candydelivery/pkg/background"
	"candydelivery/pkg/logger"
	"candydelivery/pkg/querier"
	"candydelivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	BacklogInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_patch.Service
	couriers_post.Service
}

type ServiceOrder interface {
	orders_post.Service
	orders_assign_post.Service
	orders_complete_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideBacklogInterval(cfg *config.Config) BacklogInterval {
	return BacklogInterval(cfg.Tasks.OrderBacklogInterval)
}

func provideBacklogMonitorTask(
	log logger.Logger,
	orderService backlog_monitor.Service,
	interval BacklogInterval,
) *backlog_monitor.BacklogMonitor {
	return backlog_monitor.NewBacklogMonitor(log, orderService, time.Duration(interval))
}

func provideTaskList(
	backlogMonitorTask *backlog_monitor.BacklogMonitor,
) []background.Task {
	return []background.Task{
		backlogMonitorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
