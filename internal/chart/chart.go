// Package chart draws bar charts as terminal text.
package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the length of the longest bar
const DefaultWidth = 40

const barGlyph = "█"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F3F4F6"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// Style colours the bars of one chart
type Style struct {
	Bar lipgloss.Style
}

var (
	// Blue is used for sales per weekday
	Blue = Style{Bar: lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))}
	// Green is used for dish popularity
	Green = Style{Bar: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))}
)

// Bar renders one horizontal bar per label, scaled so the largest value spans
// width cells. Negative values draw no bar.
func Bar(title string, labels []string, values []float64, width int, style Style) string {
	if width <= 0 {
		width = DefaultWidth
	}

	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), emptyStyle.Render("(no data)"))
	}

	labelWidth := 0
	highest := 0.0
	for i := 0; i < n; i++ {
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
		highest = math.Max(highest, values[i])
	}

	rows := make([]string, 0, n+1)
	rows = append(rows, titleStyle.Render(title))
	for i := 0; i < n; i++ {
		length := barLength(values[i], highest, width)
		row := labelStyle.Width(labelWidth).Render(labels[i]) +
			" │ " +
			style.Bar.Render(strings.Repeat(barGlyph, length)) +
			" " +
			valueStyle.Render(formatValue(values[i]))
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func barLength(value, highest float64, width int) int {
	if value <= 0 || highest <= 0 {
		return 0
	}
	length := int(math.Round(value / highest * float64(width)))
	if length == 0 {
		// keep tiny but non zero values visible
		length = 1
	}
	return length
}

func formatValue(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
