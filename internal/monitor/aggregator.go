package monitor

import (
	"context"
	"log/slog"
	"time"
)

// Options selects and locates the samplers built by New.
type Options struct {
	Sections     Sections
	ProcRoot     string
	SysRoot      string
	DiskPath     string
	TopProcesses int
}

// Aggregator runs its monitors once per cycle and assembles a SystemSnapshot.
// Cycles never overlap; the counter store it owns is only touched from the
// goroutine calling Collect.
type Aggregator struct {
	monitors []Monitor
	store    *CounterStore
	logger   *slog.Logger
	now      func() time.Time
}

// New builds the host monitor plus one monitor per selected section.
func New(opts Options, logger *slog.Logger) *Aggregator {
	if opts.Sections == 0 {
		opts.Sections = AllSections
	}
	if opts.ProcRoot == "" {
		opts.ProcRoot = "/proc"
	}
	if opts.SysRoot == "" {
		opts.SysRoot = "/sys"
	}

	store := NewCounterStore()
	monitors := []Monitor{NewHostMonitor(opts.ProcRoot, opts.SysRoot)}
	if opts.Sections.Has(SectionCPU) {
		monitors = append(monitors, NewCPUMonitor(opts.ProcRoot, opts.SysRoot, store, logger))
	}
	if opts.Sections.Has(SectionMemory) {
		monitors = append(monitors, NewMemoryMonitor(opts.ProcRoot, logger))
	}
	if opts.Sections.Has(SectionUptime) {
		monitors = append(monitors, NewUptimeMonitor(opts.ProcRoot))
	}
	if opts.Sections.Has(SectionDisk) {
		monitors = append(monitors, NewStorageMonitor(opts.DiskPath))
	}
	if opts.Sections.Has(SectionProcesses) {
		monitors = append(monitors, NewProcessMonitor(opts.ProcRoot, opts.TopProcesses, logger))
	}

	agg := NewAggregator(monitors, logger)
	agg.store = store
	return agg
}

func NewAggregator(monitors []Monitor, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		monitors: monitors,
		store:    NewCounterStore(),
		logger:   logger,
		now:      time.Now,
	}
}

// Store exposes the counter store shared with the CPU monitor.
func (a *Aggregator) Store() *CounterStore {
	return a.store
}

// Collect performs one sampling pass. A monitor that fails is logged and its
// section left nil; the rest of the snapshot is still filled.
func (a *Aggregator) Collect() *SystemSnapshot {
	snap := &SystemSnapshot{Timestamp: a.now()}

	for _, m := range a.monitors {
		data, err := m.Collect()
		if err != nil {
			a.logger.Warn("monitor collection failed",
				"monitor", m.Name(),
				"error", err,
			)
			continue
		}

		switch m.Name() {
		case "host":
			if host, ok := data.(*HostInfo); ok {
				snap.Host = host
			}
		case "cpu":
			if cpu, ok := data.(*CPUSnapshot); ok {
				snap.CPU = cpu
			}
		case "memory":
			if mem, ok := data.(*MemorySnapshot); ok {
				snap.Memory = mem
			}
		case "uptime":
			if up, ok := data.(*UptimeSnapshot); ok {
				snap.Uptime = up
			}
		case "storage":
			if disk, ok := data.(*DiskSnapshot); ok {
				snap.Disk = disk
			}
		case "process":
			if procs, ok := data.([]ProcessEntry); ok {
				snap.Processes = procs
				snap.ProcessCount = len(procs)
			}
		}
	}

	return snap
}

// Run calls Collect and handle repeatedly, waiting interval between the end
// of one pass and the start of the next. Cancellation is observed at the top
// of each cycle and while waiting, never in the middle of a pass. A zero
// interval runs a single pass.
func (a *Aggregator) Run(ctx context.Context, interval time.Duration, handle func(*SystemSnapshot) error) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := handle(a.Collect()); err != nil {
			return err
		}

		if interval <= 0 || ctx.Err() != nil {
			return nil
		}

		a.logger.Debug("waiting for next cycle", "interval", interval)
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
