package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	LocationsProcessed *prometheus.CounterVec
	ComputeErrors      prometheus.Counter
	BatchSeconds       *prometheus.HistogramVec
	ActiveWorkers      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		LocationsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "distance_locations_processed_total",
			Help: "Total number of locations with a computed distance result.",
		}, []string{"status"}),
		ComputeErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "distance_compute_errors_total",
			Help: "Total number of errors returned by the distance computation.",
		}),
		BatchSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "distance_batch_compute_duration_seconds",
			Help:    "Duration of batch distance computations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"unit"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "distance_active_workers",
			Help: "Current number of active workers processing batches.",
		}),
	}
}
