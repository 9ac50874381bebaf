package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/aadhaar-sanket/sanket/internal/audit"
	"github.com/aadhaar-sanket/sanket/internal/insights"
	"github.com/aadhaar-sanket/sanket/internal/logging"
	"github.com/aadhaar-sanket/sanket/internal/tui/chart"
	"github.com/aadhaar-sanket/sanket/internal/tui/keymap"
	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
	"github.com/aadhaar-sanket/sanket/internal/tui/view"
)

// DefaultFreezeDistrict is acknowledged by the freeze key when no district
// is configured.
const DefaultFreezeDistrict = "Thoubal"

// Fetcher loads the insights payload. *insights.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (*insights.Payload, error)
	URL() string
}

// ViewState is the fetch state of the dashboard. Loading implies Data is
// nil. Once Loading is false it stays false.
type ViewState struct {
	Data    *insights.Payload
	Loading bool
}

// Deps configures a Model.
type Deps struct {
	Fetcher Fetcher
	Logger  *logging.Logger

	// FreezeDistrict is acknowledged by the f key
	FreezeDistrict string

	// ChartWidth is the preferred bar width; it shrinks to fit the terminal
	ChartWidth int

	// Timeout bounds the fetch; zero means no timeout
	Timeout time.Duration
}

// Model holds the TUI application state
type Model struct {
	// Core components
	fetcher Fetcher
	logger  *logging.Logger
	keymap  *keymap.Keymap
	helpBar *view.HelpBarView

	freezeDistrict string
	chartWidth     int
	timeout        time.Duration

	// Lifecycle
	ctx      context.Context
	cancel   context.CancelFunc
	disposed bool
	quitting bool

	// Fetch state
	state    ViewState
	fetchErr error
	sections []view.Section

	// UI state
	width      int
	height     int
	ready      bool
	promptOpen bool
	notice     *audit.Acknowledgment

	spinner  spinner.Model
	viewport viewport.Model
	input    textinput.Model
}

// NewModel creates a new TUI model in the loading state
func NewModel(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	district := strings.TrimSpace(deps.FreezeDistrict)
	if district == "" {
		district = DefaultFreezeDistrict
	}

	chartWidth := deps.ChartWidth
	if chartWidth <= 0 {
		chartWidth = chart.DefaultWidth
	}

	ti := textinput.New()
	ti.Placeholder = district
	ti.CharLimit = 64
	ti.Width = 32
	ti.ShowSuggestions = true

	ctx, cancel := context.WithCancel(context.Background())
	km := keymap.DefaultKeymap()

	return Model{
		fetcher:        deps.Fetcher,
		logger:         logger.WithComponent("dashboard"),
		keymap:         km,
		helpBar:        view.NewHelpBarView(km),
		freezeDistrict: district,
		chartWidth:     chartWidth,
		timeout:        deps.Timeout,
		ctx:            ctx,
		cancel:         cancel,
		state:          ViewState{Loading: true},
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Loading)),
		input:          ti,
	}
}

// State returns the current fetch state.
func (m Model) State() ViewState {
	return m.state
}

// Err returns the fetch error, if the fetch failed.
func (m Model) Err() error {
	return m.fetchErr
}

// Dispose cancels the in-flight fetch. Results delivered afterwards are
// dropped.
func (m *Model) Dispose() {
	m.disposed = true
	if m.cancel != nil {
		m.cancel()
	}
}

// mode returns the keymap mode for the current state
func (m Model) mode() keymap.Mode {
	switch {
	case m.state.Loading:
		return keymap.ModeLoading
	case m.promptOpen:
		return keymap.ModePrompt
	default:
		return keymap.ModeDashboard
	}
}

// acknowledge replaces the notice with the acknowledgment for district.
// Nothing is logged or sent.
func (m *Model) acknowledge(district string) {
	ack := audit.Acknowledge(district)
	m.notice = &ack
}

// buildSections maps the loaded payload onto sections sized for the
// current terminal width
func (m *Model) buildSections() {
	width := view.ChartWidthFor(m.width, m.chartWidth)
	m.sections = view.BuildSections(m.state.Data, width, m.freezeDistrict)
}

// layout sizes the viewport to the space left by the header, overlay and
// help bar. It is a no-op until both the data and the terminal size are known.
func (m *Model) layout() {
	if m.state.Loading || m.width <= 0 || m.height <= 0 {
		return
	}

	m.buildSections()

	used := lipgloss.Height(view.RenderHeader(m.width)) + 1
	if overlay := m.renderOverlay(); overlay != "" {
		used += lipgloss.Height(overlay)
	}
	height := max(1, m.height-used)

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.viewport.SetContent(m.renderSections())
}
