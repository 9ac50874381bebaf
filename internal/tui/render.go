package tui

import (
	"strings"

	"github.com/aadhaar-sanket/sanket/internal/tui/view"
)

// View renders the current state: the loading placeholder until the fetch
// succeeds, then the header, the three insight sections and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state.Loading {
		return view.RenderLoading(m.width, m.height, m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(view.RenderHeader(m.width))
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderSections())
	}
	b.WriteString("\n")

	if overlay := m.renderOverlay(); overlay != "" {
		b.WriteString(overlay)
		b.WriteString("\n")
	}

	b.WriteString(m.helpBar.RenderHelp(m.helpBarState()))
	return b.String()
}

// renderSections renders every insight section, one after another
func (m Model) renderSections() string {
	sections := m.sections
	if sections == nil {
		sections = view.BuildSections(m.state.Data, m.chartWidth, m.freezeDistrict)
	}

	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = view.RenderSection(s, m.width)
	}
	return strings.Join(parts, "\n")
}

// renderOverlay renders the district prompt or the acknowledgment notice
func (m Model) renderOverlay() string {
	switch {
	case m.promptOpen:
		return view.RenderFreezePrompt(m.input.View())
	case m.notice != nil:
		return view.RenderNotice(*m.notice, m.width)
	default:
		return ""
	}
}

func (m Model) helpBarState() *view.HelpBarState {
	state := &view.HelpBarState{
		Mode:          m.mode(),
		NoticeVisible: m.notice != nil,
	}
	if m.ready {
		state.Scrollable = m.viewport.TotalLineCount() > m.viewport.Height
		state.ScrollPercent = m.viewport.ScrollPercent()
	}
	return state
}
