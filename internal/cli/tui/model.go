package tui

import (
	"time"

	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/render"
)

// Collector produces one snapshot per call. Calls never overlap.
type Collector interface {
	Collect() *monitor.SystemSnapshot
}

// Config holds TUI configuration
type Config struct {
	RefreshInterval time.Duration
	Render          render.Options
	// Sections marks which panels to draw; a selected panel with no data
	// is shown as unavailable.
	Sections monitor.Sections
}

type sortKey int

const (
	sortByCPU sortKey = iota
	sortByMemory
)

func (k sortKey) String() string {
	if k == sortByMemory {
		return "memory"
	}
	return "cpu"
}

// Model represents the TUI state
type Model struct {
	config    Config
	collector Collector

	snapshot *monitor.SystemSnapshot

	// UI state
	width       int
	height      int
	loading     bool
	lastUpdated time.Time
	sortBy      sortKey

	// Process table scroll position
	tableOffset int
}

// NewModel creates a new TUI model
func NewModel(collector Collector, cfg Config) Model {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 2 * time.Second
	}
	if cfg.Render.WarnPercent == 0 && cfg.Render.CriticalPercent == 0 {
		cfg.Render = render.DefaultOptions()
	}
	if cfg.Sections == 0 {
		cfg.Sections = monitor.AllSections
	}
	return Model{
		config:    cfg,
		collector: collector,
		loading:   true,
	}
}
