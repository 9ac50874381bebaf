// Package util provides small string helpers shared by the renderers.
package util

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates s to maxWidth visual columns, adding "..." if
// truncated. Escape sequences and wide characters are accounted for.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate counts the tail toward the final width
	return ansi.Truncate(s, maxWidth, "...")
}

// FitLabel truncates or right-pads s to exactly width visual columns.
func FitLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateANSI(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// FormatNumber renders a chart value: whole numbers with thousands
// separators, fractions with up to two decimals. NaN and infinities render
// as "n/a".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	neg := v < 0
	if neg {
		v = -v
	}

	var s string
	if v == math.Trunc(v) && v < 1e15 {
		s = groupThousands(strconv.FormatFloat(v, 'f', 0, 64))
	} else {
		s = strconv.FormatFloat(v, 'f', 2, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		whole, frac, _ := strings.Cut(s, ".")
		s = groupThousands(whole)
		if frac != "" {
			s += "." + frac
		}
	}

	if neg && s != "0" {
		return "-" + s
	}
	return s
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
