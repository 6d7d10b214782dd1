package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	barFilled = "█"
	barEmpty  = "░"
	ellipsis  = "..."
)

// ClearScreen erases the terminal and homes the cursor.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\033[2J\033[H")
	return err
}

// Truncate shortens s to width runes, ending with "..." when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= len(ellipsis) {
		return string(runes[:width])
	}
	return string(runes[:width-len(ellipsis)]) + ellipsis
}

func FormatBytes(b uint64) string {
	return humanize.IBytes(b)
}

func FormatKB(kb uint64) string {
	return humanize.IBytes(kb * 1024)
}

// Bar draws a usage bar of width cells. Percentages outside 0..100 are clamped.
func Bar(percent float64, width int) (filled, empty string) {
	n := int(percent * float64(width) / 100.0)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat(barFilled, n), strings.Repeat(barEmpty, width-n)
}

func formatPercent(percent float64) string {
	return fmt.Sprintf("%6.1f%%", percent)
}
