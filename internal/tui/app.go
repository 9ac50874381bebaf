package tui

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aadhaar-sanket/sanket/internal/errors"
	"github.com/aadhaar-sanket/sanket/internal/tui/keymap"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	altScreen bool
}

// New creates a new TUI application
func New(deps Deps, altScreen bool) *App {
	return &App{
		model:     NewModel(deps),
		altScreen: altScreen,
	}
}

// Run starts the TUI application
func (a *App) Run() error {
	var opts []tea.ProgramOption
	if a.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok && a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	final, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	if m, ok := final.(Model); ok {
		m.Dispose()
	}
	return err
}

// RunOnce drives the model without a terminal: the fetch issued by Init
// runs to completion, its result is folded in and the view is written to w
// once. A failed fetch writes the loading placeholder and returns the error.
func (a *App) RunOnce(w io.Writer) error {
	m := a.model
	defer m.Dispose()

	next, _ := m.Update(m.fetchCmd()())
	m = next.(Model)

	if _, err := fmt.Fprintln(w, m.View()); err != nil {
		return err
	}
	return m.fetchErr
}

// fetchCmd returns the command for the single insights request
func (m Model) fetchCmd() tea.Cmd {
	return fetchInsights(m.ctx, m.fetcher, m.timeout)
}

// Init issues the insights fetch and starts the loading spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spinner.Tick)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading || m.disposed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case insightsLoadedMsg:
		if m.disposed || !m.state.Loading {
			return m, nil
		}
		m.state = ViewState{Data: msg.payload, Loading: false}
		m.input.SetSuggestions(msg.payload.Districts())
		m.buildSections()
		m.layout()
		return m, nil

	case insightsFailedMsg:
		if m.disposed || !m.state.Loading || m.fetchErr != nil {
			return m, nil
		}
		m.fetchErr = msg.err
		m.logger.Error("insights fetch failed",
			"error", msg.err,
			"url", m.fetcher.URL(),
			"stage", string(errors.FetchStage(msg.err)),
			"severity", errors.GetSeverity(msg.err).String(),
			"retryable", errors.IsRetryable(msg.err),
		)
		return m, nil
	}

	return m, nil
}

// handleKeypress dispatches a key through the keymap for the current mode
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()
	cmd, ok := m.keymap.GetBinding(msg, mode)
	if !ok {
		if mode == keymap.ModePrompt {
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			return m, inputCmd
		}
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		m.Dispose()
		return m, tea.Quit

	case keymap.CmdFreezeDefault:
		m.acknowledge(m.freezeDistrict)
		m.layout()

	case keymap.CmdFreezeDistrict:
		m.promptOpen = true
		m.input.Reset()
		focus := m.input.Focus()
		m.layout()
		return m, focus

	case keymap.CmdConfirm:
		district := m.input.Value()
		if district == "" {
			district = m.freezeDistrict
		}
		m.acknowledge(district)
		m.closePrompt()

	case keymap.CmdCancel:
		m.closePrompt()

	case keymap.CmdDismissNotice:
		if m.notice != nil {
			m.notice = nil
			m.layout()
		}

	case keymap.CmdScrollDown:
		m.viewport.ScrollDown(1)
	case keymap.CmdScrollUp:
		m.viewport.ScrollUp(1)
	case keymap.CmdScrollPageDown:
		m.viewport.PageDown()
	case keymap.CmdScrollPageUp:
		m.viewport.PageUp()
	case keymap.CmdScrollToTop:
		m.viewport.GotoTop()
	case keymap.CmdScrollToBottom:
		m.viewport.GotoBottom()
	}

	return m, nil
}

func (m *Model) closePrompt() {
	m.promptOpen = false
	m.input.Blur()
	m.input.Reset()
	m.layout()
}
