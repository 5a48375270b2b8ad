package idable

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// scriptClock replays a fixed list of ticks, then repeats the last one.
type scriptClock struct {
	ticks []int64
	pos   int
}

func (c *scriptClock) Now() int64 {
	tick := c.ticks[c.pos]
	if c.pos < len(c.ticks)-1 {
		c.pos++
	}
	return epochMillis + tick
}

func TestMetricsCountBranches(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	clk := &scriptClock{ticks: []int64{1, 1, 1, 2}}
	gen := New(WithClock(clk), WithMetrics(m))

	gen.NextID() // tick 1, fresh
	gen.NextID() // tick 1, same
	gen.NextID() // tick 1, same
	gen.NextID() // tick 2, fresh

	assert.Equal(t, 2.0, testutil.ToFloat64(m.issuedTotal.WithLabelValues(branchFreshTick)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.issuedTotal.WithLabelValues(branchSameTick)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.regressionsTotal))
}

func TestMetricsCountRegressionOncePerEpisode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	clk := &scriptClock{ticks: []int64{10, 3, 4, 5, 11}}
	gen := New(WithClock(clk), WithMetrics(m))

	gen.NextID() // tick 10, fresh
	gen.NextID() // clock behind, regression detected
	gen.NextID() // still behind, same episode
	gen.NextID() // still behind, same episode
	gen.NextID() // tick 11, episode over

	assert.Equal(t, 1.0, testutil.ToFloat64(m.regressionsTotal))
}

func TestMetricsCountExhaustionWait(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	// One read primes tick 5; the wrap-around read still reports 5, so the
	// generator waits and the next read frees it at tick 6.
	clk := &scriptClock{ticks: []int64{5, 5, 5, 6}}
	gen := New(WithClock(clk), WithMetrics(m))

	gen.NextID()
	gen.sequence = sequenceMask // next increment wraps

	id := gen.NextID()
	timestamp, sequence := IntoParts(id)
	assert.Equal(t, uint64(6), timestamp)
	assert.Equal(t, uint64(0), sequence)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.waitsTotal))
}
