package idable

import "time"

// IntoParts splits an identifier into its timestamp and sequence fields.
// It is a mechanical bit-field split defined for every 64-bit value, not a
// validation: inputs that were never produced by a generator decompose all
// the same. For any id minted by NextID the returned pair is exactly the
// one that was encoded.
func IntoParts(id uint64) (timestamp, sequence uint64) {
	return id >> timestampShift, id & sequenceMask
}

// Decompose returns a set of identifier parts keyed by name.
func Decompose(id uint64) map[string]uint64 {
	timestamp, sequence := IntoParts(id)
	return map[string]uint64{
		"id":        id,
		"timestamp": timestamp,
		"sequence":  sequence,
	}
}

// ToTime returns the instant at which id was minted, at tick resolution.
func ToTime(id uint64) time.Time {
	timestamp, _ := IntoParts(id)
	return Epoch.Add(time.Duration(timestamp) * time.Millisecond)
}

// ToID returns the minimum identifier that can be minted at time t. Useful
// as a range boundary when identifiers index time-ordered data.
func ToID(t time.Time) uint64 {
	return uint64(t.Sub(Epoch)/time.Millisecond) << timestampShift
}
