package fetcher

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver is an Observer that exports session transitions as Prometheus metrics.
type MetricsObserver struct {
	transitions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	retries     prometheus.Counter
}

// NewMetricsObserver creates the collectors and registers them with reg.
// Registering twice with the same registerer fails with prometheus.AlreadyRegisteredError.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	m := &MetricsObserver{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panel_fetch_transitions_total",
				Help: "Total number of fetch session status transitions",
			},
			[]string{"from", "to"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "panel_fetch_attempt_duration_seconds",
				Help:    "Duration of fetch attempts by outcome",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		retries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "panel_fetch_retries_total",
				Help: "Total number of user initiated retries",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.duration, m.retries} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Observe implements Observer.
func (m *MetricsObserver) Observe(t Transition) {
	m.transitions.WithLabelValues(t.From.String(), t.To.String()).Inc()

	if t.To == Pending {
		m.retries.Inc()
		return
	}

	m.duration.WithLabelValues(t.To.String()).Observe(t.Elapsed.Seconds())
}
