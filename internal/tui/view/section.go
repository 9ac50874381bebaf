package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aadhaar-sanket/sanket/internal/insights"
	"github.com/aadhaar-sanket/sanket/internal/tui/chart"
	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
)

const (
	// SideBySideWidth is the narrowest terminal that puts the narrative
	// column next to the chart.
	SideBySideWidth = 110
	narrativeWidth  = 38
	// panel border (2) plus horizontal padding (4)
	panelChrome = 6
	// space after the label column and room for the value text
	chartChrome = 2 + 14
	minBarWidth = 4
)

// Section titles, in dashboard order.
const (
	TitleAdminMigration = "Administrative Migration Discovery"
	TitleGhostUpdates   = "Ghost Update Anomalies"
	TitleChildGap       = "Child Service Gap"
)

// Section is one insight panel: a numbered title, a narrative column and
// a chart.
type Section struct {
	Number   int
	Title    string
	Subtitle string
	Heading  string
	Finding  string
	Callout  string
	// CalloutStyle renders Callout; the zero style leaves it plain.
	CalloutStyle lipgloss.Style
	Chart        chart.Chart
}

// BuildSections maps the payload onto the three insight sections. A nil
// payload or a missing array yields an empty chart for that section.
// freezeDistrict names the district the freeze action acknowledges.
func BuildSections(p *insights.Payload, chartWidth int, freezeDistrict string) []Section {
	if p == nil {
		p = &insights.Payload{}
	}

	pulseLabels := make([]string, len(p.Insight1))
	pulseValues := make([]float64, len(p.Insight1))
	for i, row := range p.Insight1 {
		pulseLabels[i] = row.District
		pulseValues[i] = row.AdminPulse
	}

	fraudLabels := make([]string, len(p.Insight2))
	fraudValues := make([]float64, len(p.Insight2))
	for i, row := range p.Insight2 {
		fraudLabels[i] = row.District
		fraudValues[i] = row.FraudScore
	}

	gapLabels := make([]string, len(p.Insight3))
	enrolled := make([]float64, len(p.Insight3))
	updated := make([]float64, len(p.Insight3))
	for i, row := range p.Insight3 {
		gapLabels[i] = row.District
		enrolled[i] = row.Age5to17
		updated[i] = row.BioAge5to17
	}

	return []Section{
		{
			Number:       1,
			Title:        TitleAdminMigration,
			Subtitle:     "Detecting mass updates caused by District Renaming.",
			Heading:      "The Finding",
			Finding:      "Khairthal-Tijara shows massive demographic updates vs population.",
			Callout:      "✓ Verdict: Valid Administrative Event",
			CalloutStyle: styles.Verdict,
			Chart: chart.New(chartWidth, pulseLabels,
				chart.Series{Name: "Update Velocity", Color: styles.BlueColor, Values: pulseValues}),
		},
		{
			Number:       2,
			Title:        TitleGhostUpdates,
			Subtitle:     "Identifying Operator Fraud via impossible update rates.",
			Heading:      "The Anomaly",
			Finding:      "District Thoubal shows suspiciously high biometric updates compared to population.",
			Callout:      fmt.Sprintf("[f] FREEZE OPERATOR IDs (%s)", freezeDistrict),
			CalloutStyle: styles.ActionButton,
			Chart: chart.New(chartWidth, fraudLabels,
				chart.Series{Name: "Updates Per Person", Color: styles.RedColor, Values: fraudValues}),
		},
		{
			Number:       3,
			Title:        TitleChildGap,
			Subtitle:     "Enrolment vs. Mandatory Biometric Updates.",
			Heading:      "Impact Analysis",
			Finding:      "In Bahraich, thousands of children (Blue) are enrolled but have NOT updated biometrics (Yellow).",
			Callout:      "⚠ Risk: 99% Scholarship Failure",
			CalloutStyle: styles.RiskBadge,
			Chart: chart.New(chartWidth, gapLabels,
				chart.Series{Name: "Children Enrolled", Color: styles.BlueColor, Values: enrolled},
				chart.Series{Name: "Biometrics Updated", Color: styles.YellowColor, Values: updated}),
		},
	}
}

// RenderSection renders s as a bordered panel width columns wide. A
// non-positive width renders at natural size, stacked.
func RenderSection(s Section, width int) string {
	var header strings.Builder
	header.WriteString(styles.SectionTitle.Render(fmt.Sprintf("%d. %s", s.Number, s.Title)))
	if s.Subtitle != "" {
		header.WriteString("\n")
		header.WriteString(styles.Subtitle.Render(s.Subtitle))
	}

	inner := width - panelChrome
	var body string
	if width >= SideBySideWidth {
		narrative := lipgloss.NewStyle().Width(narrativeWidth).Render(renderNarrative(s, narrativeWidth))
		body = lipgloss.JoinHorizontal(lipgloss.Top, narrative, "  ", s.Chart.Render())
	} else {
		narrative := renderNarrative(s, inner)
		if inner > 0 {
			narrative = lipgloss.NewStyle().Width(inner).Render(narrative)
		}
		body = narrative + "\n\n" + s.Chart.Render()
	}

	panel := styles.Panel.BorderForeground(styles.SectionAccent(s.Number))
	if width > 0 {
		panel = panel.Width(width - 2)
	}
	return panel.Render(header.String() + "\n\n" + body)
}

func renderNarrative(s Section, width int) string {
	var b strings.Builder
	b.WriteString(styles.FindingTitle.Render(s.Heading))
	b.WriteString("\n")
	if width > 0 {
		b.WriteString(styles.Text.Width(width).Render(s.Finding))
	} else {
		b.WriteString(styles.Text.Render(s.Finding))
	}
	if s.Callout != "" {
		b.WriteString("\n\n")
		b.WriteString(s.CalloutStyle.Render(s.Callout))
	}
	return b.String()
}

// ChartWidthFor fits the configured bar width into a terminal width
// columns wide. Width 0 (unknown) returns configured unchanged.
func ChartWidthFor(width, configured int) int {
	if width <= 0 {
		return configured
	}

	available := width - panelChrome - chart.MaxLabelWidth - chartChrome
	if width >= SideBySideWidth {
		available -= narrativeWidth + 2
	}
	return max(minBarWidth, min(configured, available))
}
