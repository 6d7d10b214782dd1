package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/sysmon/internal/monitor"
)

type snapshotMsg struct {
	snapshot *monitor.SystemSnapshot
	at       time.Time
}

type tickMsg time.Time

func collect(c Collector) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: c.Collect(), at: time.Now()}
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		collect(m.collector),
		tick(m.config.RefreshInterval),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.loading = false
		m.snapshot = msg.snapshot
		m.lastUpdated = msg.at
		m.clampOffset()
		return m, nil

	case tickMsg:
		// A slow pass must finish before the next one starts; the CPU
		// counters are shared between passes.
		if m.loading {
			return m, tick(m.config.RefreshInterval)
		}
		m.loading = true
		return m, tea.Batch(
			collect(m.collector),
			tick(m.config.RefreshInterval),
		)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		// Manual refresh
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, collect(m.collector)

	case "s":
		if m.sortBy == sortByCPU {
			m.sortBy = sortByMemory
		} else {
			m.sortBy = sortByCPU
		}
		m.tableOffset = 0
		return m, nil

	case "up", "k":
		if m.tableOffset > 0 {
			m.tableOffset--
		}
		return m, nil

	case "down", "j":
		m.tableOffset++
		m.clampOffset()
		return m, nil
	}

	return m, nil
}

func (m *Model) clampOffset() {
	limit := 0
	if m.snapshot != nil && len(m.snapshot.Processes) > visibleRows {
		limit = len(m.snapshot.Processes) - visibleRows
	}
	if m.tableOffset > limit {
		m.tableOffset = limit
	}
}
