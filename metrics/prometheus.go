package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Exporter publishes execution events as Prometheus collectors: counters
// for submissions, completions, and panics, a gauge for in-flight thunks,
// and a histogram of run durations in seconds. All collectors are
// registered once at construction.
type Exporter struct {
	submitted prometheus.Counter
	finished  prometheus.Counter
	panicked  prometheus.Counter
	inflight  prometheus.Gauge
	durations prometheus.Histogram
}

// NewExporter registers the collectors on reg, or on
// prometheus.DefaultRegisterer when reg is nil.
func NewExporter(reg prometheus.Registerer) *Exporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	e := &Exporter{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "akka_futures_submitted_total",
			Help: "Thunks accepted by the executor.",
		}),
		finished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "akka_futures_completed_total",
			Help: "Thunks that finished executing.",
		}),
		panicked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "akka_future_panics_total",
			Help: "Panics recovered at the worker boundary.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "akka_futures_inflight",
			Help: "Thunks currently executing.",
		}),
		durations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "akka_future_duration_seconds",
			Help:    "Thunk execution duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(e.submitted, e.finished, e.panicked, e.inflight, e.durations)
	return e
}

func (e *Exporter) Submitted() { e.submitted.Inc() }

func (e *Exporter) Started() { e.inflight.Inc() }

func (e *Exporter) Finished(d time.Duration) {
	e.inflight.Dec()
	e.finished.Inc()
	e.durations.Observe(d.Seconds())
}

func (e *Exporter) Panicked() { e.panicked.Inc() }
