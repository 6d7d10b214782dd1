package monitor

import (
	"errors"
	"fmt"
)

const (
	// MaxCores is the number of per-core slots kept by a CounterStore.
	MaxCores = 32

	// AggregateCore addresses the combined "cpu" line of /proc/stat.
	AggregateCore = -1
)

var ErrCoreOutOfRange = errors.New("core id out of range")

// CounterSample is a pair of cumulative tick counters for one core.
type CounterSample struct {
	Total uint64
	Idle  uint64
}

// CounterStore remembers the last tick counters seen for every core so the
// next read can be turned into a rate. It is owned by the collector and is
// not safe for concurrent use.
type CounterStore struct {
	samples [MaxCores + 1]CounterSample
	seen    [MaxCores + 1]bool
}

func NewCounterStore() *CounterStore {
	return &CounterStore{}
}

// Update records cur for core and returns what was recorded before it.
// seen is false on the first observation of core.
func (s *CounterStore) Update(core int, cur CounterSample) (prev CounterSample, seen bool, err error) {
	slot, err := slotFor(core)
	if err != nil {
		return CounterSample{}, false, err
	}

	prev, seen = s.samples[slot], s.seen[slot]
	s.samples[slot] = cur
	s.seen[slot] = true
	return prev, seen, nil
}

// Seed injects a previous sample, as if it had been observed by Update.
func (s *CounterStore) Seed(core int, sample CounterSample) error {
	_, _, err := s.Update(core, sample)
	return err
}

func slotFor(core int) (int, error) {
	if core < AggregateCore || core >= MaxCores {
		return 0, fmt.Errorf("%w: %d", ErrCoreOutOfRange, core)
	}
	return core + 1, nil
}

// Utilization returns the busy share of the interval between prev and cur,
// in percent. Idle ticks count as idle; everything else, iowait included,
// counts as busy. A zero or negative interval yields 0.
func Utilization(prev, cur CounterSample) float64 {
	if cur.Total <= prev.Total || cur.Idle < prev.Idle {
		return 0
	}

	total := cur.Total - prev.Total
	idle := cur.Idle - prev.Idle
	if idle > total {
		return 0
	}

	return 100 * float64(total-idle) / float64(total)
}
