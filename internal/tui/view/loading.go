package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
)

// LoadingText is the placeholder message shown while insights load.
const LoadingText = "Analyzing Data..."

// RenderLoading renders the loading placeholder centered in a width x height
// area. spinner is the current spinner frame and may be empty. With no
// known size the placeholder is returned unplaced.
func RenderLoading(width, height int, spinner string) string {
	text := styles.Loading.Render(LoadingText)
	if spinner != "" {
		text = spinner + " " + text
	}

	if width <= 0 || height <= 0 {
		return text
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
