// Package chart renders horizontal bar charts for the terminal.
//
// A chart has one row label per category and one or more series. Every
// (category, series) pair draws exactly one bar line, so a chart with n
// labels and k series renders n*k bar lines, each marked by AxisGlyph.
package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
	"github.com/aadhaar-sanket/sanket/internal/util"
)

const (
	// AxisGlyph starts every bar line.
	AxisGlyph = "┤"
	// DefaultWidth is the bar width used when Width is unset.
	DefaultWidth = 40
	// MaxLabelWidth caps the label column.
	MaxLabelWidth = 18
	// EmptyText is shown for a chart without categories.
	EmptyText = "no data"
)

// eighths holds partial block glyphs for 1/8 .. 7/8 of a cell.
var eighths = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// Series is one named, colored set of values aligned with Chart.Labels.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Values []float64
}

func (s Series) value(i int) float64 {
	if i < 0 || i >= len(s.Values) {
		return 0
	}
	return s.Values[i]
}

// Chart is a horizontal bar chart. The zero value renders as an empty chart.
type Chart struct {
	Labels []string
	Series []Series
	// Width is the cell width of the longest bar.
	Width int
}

// New returns a chart over labels with the given series.
func New(width int, labels []string, series ...Series) Chart {
	return Chart{Labels: labels, Series: series, Width: width}
}

// BarCount is the number of bar lines Render draws.
func (c Chart) BarCount() int {
	return len(c.Labels) * len(c.Series)
}

// Render draws the chart. Multi-series charts get a legend line first.
func (c Chart) Render() string {
	if len(c.Labels) == 0 || len(c.Series) == 0 {
		return styles.ChartEmpty.Render(EmptyText)
	}

	width := c.Width
	if width <= 0 {
		width = DefaultWidth
	}
	labelWidth := c.labelWidth()
	maxValue := c.maxValue()

	lines := make([]string, 0, c.BarCount()+1)
	if len(c.Series) > 1 {
		lines = append(lines, c.legend())
	}

	for i, label := range c.Labels {
		for j, s := range c.Series {
			name := ""
			if j == 0 {
				name = label
			}
			v := s.value(i)

			var b strings.Builder
			b.WriteString(styles.ChartLabel.Render(util.FitLabel(name, labelWidth)))
			b.WriteString(" ")
			b.WriteString(styles.Muted.Render(AxisGlyph))
			if bar := Bar(v, maxValue, width); bar != "" {
				b.WriteString(styles.Bar(s.Color).Render(bar))
			}
			b.WriteString(" ")
			b.WriteString(styles.ChartValue.Render(util.FormatNumber(v)))
			lines = append(lines, b.String())
		}
	}

	return strings.Join(lines, "\n")
}

func (c Chart) legend() string {
	parts := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		parts = append(parts, styles.Bar(s.Color).Render("■")+" "+styles.Muted.Render(s.Name))
	}
	return strings.Join(parts, "   ")
}

func (c Chart) labelWidth() int {
	w := 1
	for _, l := range c.Labels {
		if lw := lipgloss.Width(l); lw > w {
			w = lw
		}
	}
	return min(w, MaxLabelWidth)
}

func (c Chart) maxValue() float64 {
	m := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if !math.IsNaN(v) && !math.IsInf(v, 0) && v > m {
				m = v
			}
		}
	}
	return m
}

// Bar returns the unstyled bar for v scaled so that maxValue spans width
// cells, at 1/8-cell resolution. Non-positive and non-finite values draw
// nothing; any positive value draws at least a sliver.
func Bar(v, maxValue float64, width int) string {
	if width <= 0 || maxValue <= 0 || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	cells := math.Min(v/maxValue, 1) * float64(width)
	full := int(cells)
	part := int(math.Round((cells - float64(full)) * 8))
	if part == 8 {
		full++
		part = 0
	}
	if full == 0 && part == 0 {
		part = 1
	}

	return strings.Repeat("█", full) + eighths[part]
}
