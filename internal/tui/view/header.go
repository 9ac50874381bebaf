package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
)

// AppTitle is the dashboard name shown in the header.
const AppTitle = "Aadhaar-Sanket"

// LiveBadgeText marks a dashboard rendering fetched data.
const LiveBadgeText = "LIVE SYSTEM"

// RenderHeader renders the title on the left and the live badge on the
// right of a width-wide bar.
func RenderHeader(width int) string {
	title := styles.Title.Render("◆ " + AppTitle)
	badge := styles.LiveBadge.Render(LiveBadgeText)

	gap := width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}

	bar := title + strings.Repeat(" ", gap) + badge
	if width > 0 {
		return styles.Header.Width(width).Render(bar)
	}
	return styles.Header.Render(bar)
}
