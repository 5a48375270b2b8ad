// Package idable provides process-local unique identifier generators.
//
// TimestampSeq mints 64-bit identifiers that combine a millisecond
// wall-clock tick with an intra-tick sequence counter:
//
//	+------------------------------------------+
//	| 52 Bit Timestamp (msec) | 12 Bit Sequence |
//	+------------------------------------------+
//
// Identifiers issued by one generator never repeat and sort roughly by
// creation time. Seq is a plain atomic counter for callers that need
// sequence numbers without the time component.
package idable

import "time"

// These constants are the bit lengths of identifier parts.
const (
	BitLenTime     = 52 // bit length of the timestamp field
	BitLenSequence = 12 // bit length of the sequence field
)

const (
	timestampShift = BitLenSequence
	sequenceMask   = uint64(1<<BitLenSequence - 1)

	epochMillis = int64(1637806706000)
)

// Epoch is the instant identifier timestamps are measured from.
var Epoch = time.UnixMilli(epochMillis)
