package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value int
	Style lipgloss.Style
}

// RenderBar renders value as a bar of width cells scaled against total.
func RenderBar(value, total, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if total > 0 && value > 0 {
		filled = value * width / total
		if filled == 0 {
			filled = 1
		}
		filled = min(filled, width)
	}
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderBarChart renders labelled bars scaled against the largest value,
// each followed by its count.
func RenderBarChart(bars []Bar, width int) string {
	labelWidth, peak := 0, 0
	for _, bar := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		peak = max(peak, bar.Value)
	}

	var b strings.Builder
	for _, bar := range bars {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label))
		fmt.Fprintf(&b, "%s%s  %s %d\n", bar.Label, pad, RenderBar(bar.Value, peak, width, bar.Style), bar.Value)
	}
	return b.String()
}
