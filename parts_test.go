package idable_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/huang12zheng/idable"
)

func TestIntoPartsIsTotal(t *testing.T) {
	// IntoParts is a pure bit-field split; any input decomposes, including
	// values never produced by a generator.
	timestamp, sequence := idable.IntoParts(0)
	assert.Equal(t, uint64(0), timestamp)
	assert.Equal(t, uint64(0), sequence)

	timestamp, sequence = idable.IntoParts(math.MaxUint64)
	assert.Equal(t, uint64(1)<<idable.BitLenTime-1, timestamp)
	assert.Equal(t, uint64(1)<<idable.BitLenSequence-1, sequence)

	timestamp, sequence = idable.IntoParts(uint64(42)<<idable.BitLenSequence | 7)
	assert.Equal(t, uint64(42), timestamp)
	assert.Equal(t, uint64(7), sequence)
}

func TestDecompose(t *testing.T) {
	id := uint64(1234)<<idable.BitLenSequence | 56
	parts := idable.Decompose(id)

	assert.Equal(t, id, parts["id"])
	assert.Equal(t, uint64(1234), parts["timestamp"])
	assert.Equal(t, uint64(56), parts["sequence"])
}

func TestToTime(t *testing.T) {
	clk := newStubClock(42)
	gen := idable.New(idable.WithClock(clk))

	minted := idable.ToTime(gen.NextID())
	assert.True(t, minted.Equal(idable.Epoch.Add(42*time.Millisecond)),
		"minted at %v", minted)
}

func TestToIDRoundTrip(t *testing.T) {
	at := idable.Epoch.Add(1234567 * time.Millisecond)

	id := idable.ToID(at)
	_, sequence := idable.IntoParts(id)
	assert.Equal(t, uint64(0), sequence, "ToID is a lower range boundary")
	assert.True(t, idable.ToTime(id).Equal(at))
}

func TestToIDOrdersAgainstMintedIDs(t *testing.T) {
	clk := newStubClock(100)
	gen := idable.New(idable.WithClock(clk))
	id := gen.NextID()

	before := idable.ToID(idable.Epoch.Add(99 * time.Millisecond))
	after := idable.ToID(idable.Epoch.Add(101 * time.Millisecond))
	assert.Less(t, before, id)
	assert.Greater(t, after, id)
}
