package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on dark terminals
	PrimaryColor   = lipgloss.Color("#60A5FA") // Blue (blue-400)
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray (gray-500)

	// Chart series colors
	BlueColor   = lipgloss.Color("#60A5FA")
	RedColor    = lipgloss.Color("#F87171")
	AmberColor  = lipgloss.Color("#F59E0B")
	YellowColor = lipgloss.Color("#FBBF24")

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Header
	Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		PaddingBottom(0)

	LiveBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(SecondaryColor).
			Padding(0, 1)

	// Section panel; callers set BorderForeground to the section accent
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	FindingTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	Verdict = lipgloss.NewStyle().
		Bold(true).
		Foreground(SurfaceColor).
		Background(PrimaryColor).
		Padding(0, 1)

	RiskBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(WarningColor).
			Padding(0, 1)

	ActionButton = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(lipgloss.Color("#DC2626")).
			Padding(0, 1)

	// Loading placeholder
	Loading = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	// Acknowledgment notice
	Notice = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ErrorColor).
		Foreground(TextColor).
		Padding(0, 2)

	// Input prompt
	InputPrompt = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Chart pieces
	ChartLabel = lipgloss.NewStyle().
			Foreground(TextColor)

	ChartValue = lipgloss.NewStyle().
			Foreground(MutedColor)

	ChartEmpty = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// SectionAccent returns the accent color of insight section n (1-based):
// blue for administrative migration, red for ghost updates and amber for the
// child service gap. Unknown sections fall back to BorderColor.
func SectionAccent(n int) lipgloss.Color {
	switch n {
	case 1:
		return BlueColor
	case 2:
		return RedColor
	case 3:
		return AmberColor
	default:
		return BorderColor
	}
}

// Bar returns the style used to paint a chart bar of the given color.
func Bar(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}
