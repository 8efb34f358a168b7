//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"candydelivery/internal/handlers/tasks/backlog_monitor"
	"candydelivery/internal/pkg/config"
	courierRepo "candydelivery/internal/repository/courier"
	orderRepo "candydelivery/internal/repository/order"
	courierService "candydelivery/internal/service/courier"
	orderService "candydelivery/internal/service/order"
	"candydelivery/pkg/logger"
	"candydelivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBacklogInterval,

		provideCourierRepository,
		provideOrderRepository,

		provideServiceCourier,
		provideServiceOrder,

		provideBacklogMonitorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(backlog_monitor.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
