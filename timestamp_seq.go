package idable

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// TimestampSeq mints unique 64-bit identifiers from a wall-clock tick and an
// intra-tick sequence counter. It is safe for concurrent use: the whole
// compare-and-advance step runs as one critical section, so no two callers
// can observe the same (tick, sequence) pair.
type TimestampSeq struct {
	mu        sync.Mutex
	clock     Clock
	logger    *zap.Logger
	metrics   *Metrics
	lastTick  int64
	sequence  uint64
	regressed bool
}

// New returns a generator backed by the system clock unless options say
// otherwise.
func New(opts ...Option) *TimestampSeq {
	g := &TimestampSeq{
		clock:    SystemClock{},
		logger:   zap.NewNop(),
		lastTick: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NextID generates the next unique identifier. It never fails; when the
// sequence field is exhausted within one tick it blocks until the clock
// reports a fresh tick.
//
// A clock reading below the last issuing tick is treated as no progress:
// the sequence keeps counting against the frozen tick, so already-issued
// (tick, sequence) pairs cannot repeat. Strict time-ordering is suspended
// for the duration of such a regression, uniqueness is not.
func (g *TimestampSeq) NextID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	tick := g.clock.Now() - epochMillis

	if tick > g.lastTick {
		g.lastTick = tick
		g.sequence = 0
		g.regressed = false
		g.metrics.recordIssue(branchFreshTick)
	} else {
		if tick < g.lastTick && !g.regressed {
			g.regressed = true
			g.logger.Warn("clock moved backwards, freezing tick",
				zap.Int64("observed_tick", tick),
				zap.Int64("frozen_tick", g.lastTick),
			)
			g.metrics.recordRegression()
		}
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			g.lastTick = g.waitNextTick()
			g.regressed = false
		}
		g.metrics.recordIssue(branchSameTick)
	}

	return uint64(g.lastTick)<<timestampShift | g.sequence
}

// waitNextTick spins against the clock until it reports a tick strictly
// greater than the last issuing tick. Caller holds g.mu.
func (g *TimestampSeq) waitNextTick() int64 {
	start := time.Now()
	g.logger.Debug("sequence exhausted, waiting for next tick",
		zap.Int64("tick", g.lastTick),
	)

	tick := g.clock.Now() - epochMillis
	for tick <= g.lastTick {
		tick = g.clock.Now() - epochMillis
	}

	g.metrics.recordWait(time.Since(start))
	return tick
}
