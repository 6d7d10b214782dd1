package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/render"
)

const (
	visibleRows = 10
	barWidth    = 20
	coreBarSize = 12
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{m.renderTitleBar()}

	if m.snapshot == nil {
		sections = append(sections, helpStyle.Render("  Collecting first sample..."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if host := m.snapshot.Host; host != nil {
		sections = append(sections, helpStyle.Render(fmt.Sprintf("  %s │ %s │ %s", host.Hostname, host.Platform, host.Kernel)))
	}

	sel := m.config.Sections
	if sel.Has(monitor.SectionCPU) {
		sections = append(sections, m.renderCPU())
	}
	if sel.Has(monitor.SectionMemory) {
		sections = append(sections, m.renderMemory())
	}
	if sel.Has(monitor.SectionDisk) {
		sections = append(sections, m.renderDisk())
	}
	if sel.Has(monitor.SectionUptime) {
		sections = append(sections, m.renderUptime())
	}
	if sel.Has(monitor.SectionProcesses) {
		sections = append(sections, m.renderProcesses())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("SYSMON DASHBOARD")

	refreshInfo := fmt.Sprintf("↻ %s", m.config.RefreshInterval)
	if m.loading {
		refreshInfo = "↻ loading..."
	}

	help := "q:quit r:refresh s:sort ↑↓:scroll"

	rightPart := fmt.Sprintf("%s | %s", refreshInfo, help)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(rightPart))
}

func (m Model) renderProgressBar(label string, percent float64, width int) string {
	filled, empty := render.Bar(percent, width)
	color := levelColor(m.config.Render.LevelFor(percent))
	filledBar := lipgloss.NewStyle().Foreground(color).Render(filled)
	emptyBar := progressBarEmptyStyle.Render(empty)

	return fmt.Sprintf("%s [%s%s] %5.1f%%", labelStyle.Render(label), filledBar, emptyBar, percent)
}

func unavailable(title string) string {
	return fmt.Sprintf("%s %s", sectionHeaderStyle.Render("  "+title), unavailableStyle.Render("unavailable"))
}

func (m Model) renderCPU() string {
	cpu := m.snapshot.CPU
	if cpu == nil {
		return unavailable("CPU")
	}

	model := render.Truncate(cpu.Model, m.config.Render.ModelWidth)
	lines := []string{
		sectionHeaderStyle.Render(fmt.Sprintf("  CPU: %s (%d cores)", model, cpu.Cores)),
		"  " + m.renderProgressBar("Total ", cpu.UsagePercent, barWidth) + m.renderTemperature(cpu.Temperature),
	}

	// Per-core bars, two per row.
	for i := 0; i < len(cpu.CoreUsage); i += 2 {
		row := "  " + m.renderProgressBar(fmt.Sprintf("cpu%-2d", i), cpu.CoreUsage[i], coreBarSize)
		if i+1 < len(cpu.CoreUsage) {
			row += "    " + m.renderProgressBar(fmt.Sprintf("cpu%-2d", i+1), cpu.CoreUsage[i+1], coreBarSize)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderTemperature(celsius *float64) string {
	if celsius == nil {
		return ""
	}
	color := levelColor(m.config.Render.TemperatureLevel(*celsius))
	return "    " + labelStyle.Render("Temp ") + lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%.1f°C", *celsius))
}

func (m Model) renderMemory() string {
	mem := m.snapshot.Memory
	if mem == nil {
		return unavailable("Memory")
	}

	lines := []string{
		sectionHeaderStyle.Render("  Memory"),
		fmt.Sprintf("  %s  %s", m.renderProgressBar("RAM   ", mem.UsagePercent, barWidth),
			valueStyle.Render(fmt.Sprintf("(%s / %s)", render.FormatKB(mem.UsedKB), render.FormatKB(mem.TotalKB)))),
	}
	if mem.SwapTotalKB > 0 {
		lines = append(lines, fmt.Sprintf("  %s  %s", m.renderProgressBar("Swap  ", mem.SwapPercent, barWidth),
			valueStyle.Render(fmt.Sprintf("(%s / %s)", render.FormatKB(mem.SwapUsedKB), render.FormatKB(mem.SwapTotalKB)))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDisk() string {
	disk := m.snapshot.Disk
	if disk == nil {
		return unavailable("Storage")
	}

	mount := fmt.Sprintf("%-6s", render.Truncate(disk.Mount, 6))
	bar := m.renderProgressBar(mount, disk.UsagePercent, barWidth)
	info := fmt.Sprintf("(%s / %s)", render.FormatBytes(disk.UsedBytes), render.FormatBytes(disk.TotalBytes))

	return strings.Join([]string{
		sectionHeaderStyle.Render("  Storage"),
		fmt.Sprintf("  %s  %s", bar, valueStyle.Render(info)),
	}, "\n")
}

func (m Model) renderUptime() string {
	up := m.snapshot.Uptime
	if up == nil {
		return unavailable("Uptime")
	}
	return fmt.Sprintf("%s %s", sectionHeaderStyle.Render("  Uptime:"), valueStyle.Render(up.Formatted))
}

// sortedProcesses returns a copy ordered by the active sort key.
func (m Model) sortedProcesses() []monitor.ProcessEntry {
	procs := append([]monitor.ProcessEntry(nil), m.snapshot.Processes...)
	if m.sortBy == sortByMemory {
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].MemoryKB > procs[j].MemoryKB
		})
	} else {
		monitor.RankProcesses(procs)
	}
	return procs
}

func (m Model) renderProcesses() string {
	if m.snapshot.Processes == nil {
		return unavailable("Processes")
	}

	nameWidth := m.config.Render.NameWidth
	lines := []string{
		sectionHeaderStyle.Render(fmt.Sprintf("  Top Processes (by %s)", m.sortBy)),
		tableHeaderStyle.Render(fmt.Sprintf("  %6s │ %-*s │ %7s │ %10s", "PID", nameWidth, "Name", "CPU", "Memory")),
	}

	procs := m.sortedProcesses()
	start := m.tableOffset
	if start > len(procs) {
		start = len(procs)
	}
	end := start + visibleRows
	if end > len(procs) {
		end = len(procs)
	}

	for _, p := range procs[start:end] {
		row := fmt.Sprintf("  %6d │ %-*s │ %6.1f%% │ %10s",
			p.PID, nameWidth, render.Truncate(p.Name, nameWidth), p.CPUPercent, render.FormatKB(p.MemoryKB))
		lines = append(lines, tableCellStyle.Render(row))
	}

	if len(procs) > visibleRows {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("  [%d-%d of %d processes]", start+1, end, len(procs))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	return helpStyle.Render(fmt.Sprintf(
		"  Processes: %d │ Sort: %s │ Updated: %s",
		m.snapshot.ProcessCount,
		m.sortBy,
		m.lastUpdated.Format("15:04:05"),
	))
}
