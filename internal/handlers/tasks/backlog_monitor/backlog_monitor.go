package backlog_monitor

import (
	"context"
	"time"

	"candydelivery/internal/pkg/metrics"
	"candydelivery/pkg/logger"
)

type Service interface {
	CountUnassignedOrders(ctx context.Context) (int64, error)
}

// BacklogMonitor периодически пересчитывает очередь неназначенных заказов и
// публикует её размер в метрику.
type BacklogMonitor struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBacklogMonitor(log logger.Logger, service Service, interval time.Duration) *BacklogMonitor {
	return &BacklogMonitor{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BacklogMonitor) TTL() time.Duration {
	return b.interval
}

func (b *BacklogMonitor) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	count, err := b.service.CountUnassignedOrders(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.OrderBacklog.Set(float64(count))

	if count > 0 {
		b.log.With(
			logger.NewField("unassigned_orders", count),
		).Info("order backlog")
	}

	return nil
}

func (b *BacklogMonitor) Info() string {
	return "order backlog monitor"
}
