package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	EntityWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_writes_total",
			Help: "Entity mutations by type and action",
		},
		[]string{"entity", "action"}, // user|gym|membership x created|updated|deleted
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(EntityWrites)
}

// ObserveWorkerQueue exports the audit worker's queue depth.
func ObserveWorkerQueue(depth func() int) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
		func() float64 { return float64(depth()) },
	))
}
