package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrderBacklog = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "orders_backlog_size",
		Help: "Number of orders waiting for courier assignment",
	},
)
