package idable

import "time"

// Clock supplies the current wall-clock time in milliseconds since the Unix
// epoch. Readings only need to be comparable with each other; the generator
// itself compensates for backward jumps, so OS-level monotonicity is not
// required. A clock that never advances stalls NextID in the
// sequence-exhaustion retry path, so clock liveness is a precondition.
type Clock interface {
	Now() int64
}

// SystemClock reads the operating system clock.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().UnixMilli()
}
