// Package render draws a SystemSnapshot as a boxed text dashboard.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/haskel/sysmon/internal/monitor"
)

const (
	barWidth = 35

	DefaultWarnPercent     = 60.0
	DefaultCriticalPercent = 80.0
	DefaultModelWidth      = 60
	DefaultNameWidth       = 16
	DefaultMaxProcessRows  = 10

	timestampLayout = "2006-01-02 15:04:05"
)

type Options struct {
	Color           bool
	WarnPercent     float64
	CriticalPercent float64
	ModelWidth      int
	NameWidth       int
	MaxProcessRows  int
}

func DefaultOptions() Options {
	return Options{
		Color:           true,
		WarnPercent:     DefaultWarnPercent,
		CriticalPercent: DefaultCriticalPercent,
		ModelWidth:      DefaultModelWidth,
		NameWidth:       DefaultNameWidth,
		MaxProcessRows:  DefaultMaxProcessRows,
	}
}

// Renderer writes dashboards to a single output.
type Renderer struct {
	w      io.Writer
	opts   Options
	styles styles
}

// New creates a renderer for w. With Color disabled no escape sequences are
// emitted besides the screen clear.
func New(w io.Writer, opts Options) *Renderer {
	def := DefaultOptions()
	if opts.ModelWidth <= 0 {
		opts.ModelWidth = def.ModelWidth
	}
	if opts.NameWidth <= 0 {
		opts.NameWidth = def.NameWidth
	}
	if opts.MaxProcessRows <= 0 {
		opts.MaxProcessRows = def.MaxProcessRows
	}

	lr := lipgloss.NewRenderer(w)
	if !opts.Color {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:      w,
		opts:   opts,
		styles: newStyles(lr),
	}
}

// Write renders snap and writes it followed by a newline.
func (r *Renderer) Write(snap *monitor.SystemSnapshot) error {
	_, err := fmt.Fprintln(r.w, r.Render(snap))
	return err
}

// Render returns the dashboard text. Sections missing from snap are skipped.
func (r *Renderer) Render(snap *monitor.SystemSnapshot) string {
	blocks := []string{r.renderHeader(snap)}

	if snap.CPU != nil {
		blocks = append(blocks, r.renderCPU(snap.CPU))
	}
	if snap.Memory != nil {
		blocks = append(blocks, r.renderMemory(snap.Memory))
	}
	if snap.Uptime != nil {
		blocks = append(blocks, r.renderUptime(snap.Uptime))
	}
	if snap.Disk != nil {
		blocks = append(blocks, r.renderDisk(snap.Disk))
	}
	if len(snap.Processes) > 0 {
		blocks = append(blocks, r.renderProcesses(snap.Processes))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r *Renderer) renderHeader(snap *monitor.SystemSnapshot) string {
	lines := []string{
		r.styles.title.Render("System Monitor"),
		r.styles.value.Render(snap.Timestamp.Local().Format(timestampLayout)),
	}
	if snap.Host != nil {
		host := snap.Host.Hostname
		if snap.Host.Platform != "" {
			host += " | " + snap.Host.Platform
		}
		if snap.Host.Kernel != "" {
			host += " | " + snap.Host.Kernel
		}
		lines = append(lines, r.styles.muted.Render(host))
	}
	return r.styles.header.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderCPU(cpu *monitor.CPUSnapshot) string {
	lines := []string{
		r.field("Model:", Truncate(cpu.Model, r.opts.ModelWidth)),
		r.field("Cores:", fmt.Sprintf("%d", cpu.Cores)),
		r.usageLine("Total usage:", cpu.UsagePercent),
	}
	if cpu.Temperature != nil {
		t := *cpu.Temperature
		lvl := r.opts.TemperatureLevel(t)
		lines = append(lines, fmt.Sprintf("%s %s",
			r.styles.label.Render("Temperature:"),
			r.styles.level(lvl).Render(fmt.Sprintf("%6.1f°C", t)),
		))
	}
	return r.styles.box("CPU Information", colorCPU, strings.Join(lines, "\n"))
}

func (r *Renderer) renderMemory(mem *monitor.MemorySnapshot) string {
	lvl := r.opts.LevelFor(mem.UsagePercent)
	lines := []string{
		fmt.Sprintf("%s %s %s %s %s %s",
			r.styles.label.Render("RAM Total:"), r.styles.value.Render(fmt.Sprintf("%-10s", FormatKB(mem.TotalKB))),
			r.styles.label.Render("Used:"), r.styles.level(lvl).Render(fmt.Sprintf("%-10s", FormatKB(mem.UsedKB))),
			r.styles.label.Render("Available:"), r.styles.value.Render(FormatKB(mem.AvailableKB)),
		),
		r.usageLine("RAM usage:", mem.UsagePercent),
	}
	if mem.SwapTotalKB > 0 {
		swapLvl := r.opts.LevelFor(mem.SwapPercent)
		lines = append(lines, fmt.Sprintf("%s %s %s %s %s %s",
			r.styles.label.Render("SWAP Total:"), r.styles.value.Render(fmt.Sprintf("%-10s", FormatKB(mem.SwapTotalKB))),
			r.styles.label.Render("Used:"), r.styles.level(swapLvl).Render(fmt.Sprintf("%-10s", FormatKB(mem.SwapUsedKB))),
			r.styles.label.Render("Usage:"), r.styles.level(swapLvl).Render(formatPercent(mem.SwapPercent)),
		))
	}
	return r.styles.box("Memory Information", colorMemory, strings.Join(lines, "\n"))
}

func (r *Renderer) renderUptime(up *monitor.UptimeSnapshot) string {
	return r.styles.box("System Uptime", colorUptime, r.field("System uptime:", up.Formatted))
}

func (r *Renderer) renderDisk(disk *monitor.DiskSnapshot) string {
	lvl := r.opts.LevelFor(disk.UsagePercent)
	lines := []string{
		fmt.Sprintf("%s %s %s %s %s %s",
			r.styles.label.Render("Filesystem:"), r.styles.value.Render(fmt.Sprintf("%-8s", disk.Mount)),
			r.styles.label.Render("Total:"), r.styles.value.Render(fmt.Sprintf("%-10s", FormatBytes(disk.TotalBytes))),
			r.styles.label.Render("Used:"), r.styles.level(lvl).Render(FormatBytes(disk.UsedBytes)),
		),
		r.usageLine("Disk usage:", disk.UsagePercent),
	}
	return r.styles.box("Disk Information", colorDisk, strings.Join(lines, "\n"))
}

func (r *Renderer) renderProcesses(procs []monitor.ProcessEntry) string {
	lines := []string{
		r.styles.title.Render(fmt.Sprintf("%5s %-*s %8s %12s", "PID", r.opts.NameWidth, "NAME", "CPU%", "MEMORY")),
	}
	for i, p := range procs {
		if i >= r.opts.MaxProcessRows {
			break
		}
		lvl := r.opts.LevelFor(p.CPUPercent)
		lines = append(lines, fmt.Sprintf("%5d %-*s %s %12s",
			p.PID,
			r.opts.NameWidth, Truncate(p.Name, r.opts.NameWidth),
			r.styles.level(lvl).Render(fmt.Sprintf("%7.1f%%", p.CPUPercent)),
			FormatKB(p.MemoryKB),
		))
	}
	return r.styles.box("Top Processes", colorProcesses, strings.Join(lines, "\n"))
}

func (r *Renderer) field(label, value string) string {
	return fmt.Sprintf("%s %s", r.styles.label.Render(label), r.styles.value.Render(value))
}

// usageLine renders "label  NN.N% [████░░░]" colored by level.
func (r *Renderer) usageLine(label string, percent float64) string {
	style := r.styles.level(r.opts.LevelFor(percent))
	filled, empty := Bar(percent, barWidth)
	return fmt.Sprintf("%s %s [%s%s]",
		r.styles.label.Render(label),
		style.Render(formatPercent(percent)),
		style.Render(filled),
		r.styles.barRest.Render(empty),
	)
}
