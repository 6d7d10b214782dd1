package render

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeader    = lipgloss.Color("86")  // Cyan
	colorCPU       = lipgloss.Color("33")  // Blue
	colorMemory    = lipgloss.Color("170") // Magenta
	colorUptime    = lipgloss.Color("82")  // Green
	colorDisk      = lipgloss.Color("220") // Yellow
	colorProcesses = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245")
	colorValue     = lipgloss.Color("252")

	colorOK       = lipgloss.Color("82")
	colorWarn     = lipgloss.Color("214")
	colorCritical = lipgloss.Color("196")
)

// boxWidth is the inner width of every section box.
const boxWidth = 78

type styles struct {
	header  lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	barRest lipgloss.Style
	levels  map[Level]lipgloss.Style
	r       *lipgloss.Renderer
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorHeader).
			Width(boxWidth).
			Align(lipgloss.Center),
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(colorMuted),
		value: r.NewStyle().Foreground(colorValue),
		muted: r.NewStyle().Foreground(colorMuted),
		barRest: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		levels: map[Level]lipgloss.Style{
			LevelOK:       r.NewStyle().Foreground(colorOK),
			LevelWarn:     r.NewStyle().Foreground(colorWarn),
			LevelCritical: r.NewStyle().Foreground(colorCritical),
		},
		r: r,
	}
}

// box frames a section with its title on the first line.
func (s styles) box(title string, color lipgloss.Color, body string) string {
	style := s.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(boxWidth).
		Padding(0, 1)
	heading := s.title.Foreground(color).Render(title)
	return style.Render(heading + "\n" + body)
}

func (s styles) level(l Level) lipgloss.Style {
	return s.levels[l]
}
