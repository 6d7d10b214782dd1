package monitor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterStore_FirstObservation(t *testing.T) {
	store := NewCounterStore()

	prev, seen, err := store.Update(0, CounterSample{Total: 1000, Idle: 400})
	require.NoError(t, err)
	assert.False(t, seen)
	assert.Equal(t, CounterSample{}, prev)

	prev, seen, err = store.Update(0, CounterSample{Total: 2000, Idle: 900})
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Equal(t, CounterSample{Total: 1000, Idle: 400}, prev)
}

func TestCounterStore_AggregateIsSeparateSlot(t *testing.T) {
	store := NewCounterStore()

	_, _, err := store.Update(AggregateCore, CounterSample{Total: 10, Idle: 5})
	require.NoError(t, err)

	_, seen, err := store.Update(0, CounterSample{Total: 20, Idle: 5})
	require.NoError(t, err)
	assert.False(t, seen, "core 0 must not see the aggregate sample")

	prev, seen, err := store.Update(AggregateCore, CounterSample{Total: 30, Idle: 6})
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Equal(t, uint64(10), prev.Total)
}

func TestCounterStore_Capacity(t *testing.T) {
	store := NewCounterStore()

	_, _, err := store.Update(MaxCores-1, CounterSample{Total: 1})
	assert.NoError(t, err)

	for _, core := range []int{MaxCores, MaxCores + 10, -2} {
		_, _, err := store.Update(core, CounterSample{Total: 1})
		assert.ErrorIs(t, err, ErrCoreOutOfRange, "core %d", core)
	}
}

func TestCounterStore_Seed(t *testing.T) {
	store := NewCounterStore()
	require.NoError(t, store.Seed(3, CounterSample{Total: 100, Idle: 50}))

	prev, seen, err := store.Update(3, CounterSample{Total: 200, Idle: 60})
	require.NoError(t, err)
	assert.True(t, seen)
	assert.InDelta(t, 90.0, Utilization(prev, CounterSample{Total: 200, Idle: 60}), 1e-9)
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name string
		prev CounterSample
		cur  CounterSample
		want float64
	}{
		{"half busy", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 1200, Idle: 600}, 50},
		{"fully busy", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 1100, Idle: 500}, 100},
		{"fully idle", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 1100, Idle: 600}, 0},
		{"no elapsed ticks", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 1000, Idle: 500}, 0},
		{"total rolled back", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 900, Idle: 500}, 0},
		{"idle rolled back", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 1100, Idle: 400}, 0},
		{"idle outran total", CounterSample{Total: 1000, Idle: 500}, CounterSample{Total: 1010, Idle: 600}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Utilization(tt.prev, tt.cur), 1e-9)
		})
	}
}

func TestUtilization_StaysInRangeForMonotonicCounters(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		store := NewCounterStore()
		cur := CounterSample{}

		for step := 0; step < 50; step++ {
			idleDelta := uint64(rng.Intn(1000))
			busyDelta := uint64(rng.Intn(1000))
			next := CounterSample{
				Total: cur.Total + idleDelta + busyDelta,
				Idle:  cur.Idle + idleDelta,
			}

			prev, seen, err := store.Update(0, next)
			require.NoError(t, err)
			if !seen {
				cur = next
				continue
			}

			u := Utilization(prev, next)
			assert.GreaterOrEqual(t, u, 0.0)
			assert.LessOrEqual(t, u, 100.0)
			cur = next
		}
	}
}

func TestUtilization_SamePairTwiceIsZero(t *testing.T) {
	store := NewCounterStore()
	sample := CounterSample{Total: 123456, Idle: 100000}

	_, _, err := store.Update(1, sample)
	require.NoError(t, err)
	prev, seen, err := store.Update(1, sample)
	require.NoError(t, err)
	require.True(t, seen)

	assert.Equal(t, 0.0, Utilization(prev, sample))
}
