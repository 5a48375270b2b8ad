package idable

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	branchFreshTick = "fresh_tick"
	branchSameTick  = "same_tick"
)

// Metrics collects generator counters for Prometheus. Attach it to a
// generator with WithMetrics; one Metrics value may be shared by several
// generators. All methods tolerate a nil receiver, so an unconfigured
// generator pays no collection cost.
type Metrics struct {
	issuedTotal      *prometheus.CounterVec
	regressionsTotal prometheus.Counter
	waitsTotal       prometheus.Counter
	waitDuration     prometheus.Histogram
}

// NewMetrics registers the generator collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		issuedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "idable_ids_issued_total",
				Help: "Total number of identifiers issued",
			},
			[]string{"branch"},
		),
		regressionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "idable_clock_regressions_total",
				Help: "Total number of detected backward clock jumps",
			},
		),
		waitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "idable_sequence_waits_total",
				Help: "Total number of sequence-exhaustion waits",
			},
		),
		waitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "idable_sequence_wait_duration_seconds",
				Help:    "Time spent waiting for the clock to advance",
				Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
			},
		),
	}

	reg.MustRegister(
		m.issuedTotal,
		m.regressionsTotal,
		m.waitsTotal,
		m.waitDuration,
	)

	return m
}

func (m *Metrics) recordIssue(branch string) {
	if m == nil {
		return
	}
	m.issuedTotal.WithLabelValues(branch).Inc()
}

func (m *Metrics) recordRegression() {
	if m == nil {
		return
	}
	m.regressionsTotal.Inc()
}

func (m *Metrics) recordWait(d time.Duration) {
	if m == nil {
		return
	}
	m.waitsTotal.Inc()
	m.waitDuration.Observe(d.Seconds())
}
