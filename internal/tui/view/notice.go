package view

import (
	"github.com/aadhaar-sanket/sanket/internal/audit"
	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
)

// RenderNotice renders a freeze acknowledgment as a bordered notice.
func RenderNotice(ack audit.Acknowledgment, width int) string {
	text := styles.Error.Bold(true).Render("🚨 ") + ack.Message
	if width > 4 {
		return styles.Notice.Width(width - 2).Render(text)
	}
	return styles.Notice.Render(text)
}

// RenderFreezePrompt renders the district input line. input is the text
// input's current view.
func RenderFreezePrompt(input string) string {
	return styles.InputPrompt.Render("Freeze operator IDs in district: ") + input
}
