package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceRingRecordsNewestFirst(t *testing.T) {
	ring := NewTraceRing(10)

	ring.Record("SELECT 1", time.Millisecond, 1, nil)
	ring.Record("SELECT 2", time.Millisecond, 1, nil)
	ring.Record("SELECT 3", time.Millisecond, 1, errors.New("boom"))

	traces := ring.Snapshot()
	require.Len(t, traces, 3)
	assert.Equal(t, "SELECT 3", traces[0].SQL)
	assert.Equal(t, "boom", traces[0].Error)
	assert.Equal(t, "SELECT 2", traces[1].SQL)
	assert.Equal(t, "SELECT 1", traces[2].SQL)
	assert.Empty(t, traces[2].Error)
}

func TestTraceRingEvictsOldest(t *testing.T) {
	ring := NewTraceRing(3)

	for i := 1; i <= 5; i++ {
		ring.Record(fmt.Sprintf("SELECT %d", i), time.Millisecond, 1, nil)
	}

	traces := ring.Snapshot()
	require.Len(t, traces, 3)
	assert.Equal(t, "SELECT 5", traces[0].SQL)
	assert.Equal(t, "SELECT 4", traces[1].SQL)
	assert.Equal(t, "SELECT 3", traces[2].SQL)

	// Sequence numbers keep counting across evictions
	assert.Equal(t, 5, traces[0].Seq)
}

func TestTraceRingReset(t *testing.T) {
	ring := NewTraceRing(5)
	ring.Record("SELECT 1", time.Millisecond, 1, nil)
	ring.Record("SELECT 2", time.Millisecond, 1, nil)

	ring.Reset()
	assert.Empty(t, ring.Snapshot())

	// Recording keeps working after a reset
	ring.Record("SELECT 3", time.Millisecond, 1, nil)
	traces := ring.Snapshot()
	require.Len(t, traces, 1)
	assert.Equal(t, "SELECT 3", traces[0].SQL)
}
