package idable

import "go.uber.org/zap"

// Option configures a TimestampSeq.
type Option func(*TimestampSeq)

// WithClock substitutes the clock source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(g *TimestampSeq) {
		g.clock = c
	}
}

// WithLogger attaches a logger for clock-regression and
// sequence-exhaustion events. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *TimestampSeq) {
		g.logger = logger
	}
}

// WithMetrics attaches a metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(g *TimestampSeq) {
		g.metrics = m
	}
}
