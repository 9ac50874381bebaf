package view

import (
	"fmt"
	"strings"

	"github.com/aadhaar-sanket/sanket/internal/tui/keymap"
	"github.com/aadhaar-sanket/sanket/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
// This separates the render-time state from the Model struct.
type HelpBarState struct {
	// Mode selects which bindings are listed
	Mode keymap.Mode

	// NoticeVisible indicates a freeze acknowledgment is on screen
	NoticeVisible bool

	// ScrollPercent is the viewport position, 0..1
	ScrollPercent float64

	// Scrollable is true when the dashboard is taller than the viewport
	Scrollable bool
}

// shows reports whether b belongs in the help bar for this state
func (s *HelpBarState) shows(b keymap.KeyBinding) bool {
	switch {
	case b.Command == keymap.CmdDismissNotice:
		return s.NoticeVisible
	case b.Category == keymap.CategoryScrolling:
		return s.Scrollable
	default:
		return true
	}
}

// collapsedCategories share a single hint that lists only their printable
// keys, e.g. "[j/k/g/G] scroll".
var collapsedCategories = map[string]string{
	keymap.CategoryScrolling: "scroll",
}

type hint struct {
	keys []string
	desc string
}

// HelpBarView renders the key hints of a keymap for the current mode.
type HelpBarView struct {
	keymap *keymap.Keymap
}

// NewHelpBarView creates a HelpBarView for km. A nil km uses the default
// keymap.
func NewHelpBarView(km *keymap.Keymap) *HelpBarView {
	if km == nil {
		km = keymap.DefaultKeymap()
	}
	return &HelpBarView{keymap: km}
}

// RenderHelp renders the help bar based on current state.
func (v *HelpBarView) RenderHelp(state *HelpBarState) string {
	if state == nil {
		return ""
	}

	hints := v.hints(state)
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.HelpKey.Render("["+strings.Join(h.keys, "/")+"]")+" "+h.desc)
	}
	line := strings.Join(parts, "  ")

	switch {
	case state.Mode == keymap.ModePrompt:
		line = styles.Warning.Bold(true).Render("FREEZE") + "  " + line
	case state.Mode == keymap.ModeDashboard && state.Scrollable:
		line += "  " + styles.Muted.Render(scrollIndicator(state.ScrollPercent))
	}
	return styles.HelpBar.Render(line)
}

// hints lists one entry per command in binding order, merging collapsed
// categories into a single entry.
func (v *HelpBarView) hints(state *HelpBarState) []hint {
	var hints []hint
	seen := make(map[keymap.Command]bool)
	groups := make(map[string]int)

	for _, b := range v.keymap.GetModeBindings(state.Mode) {
		if seen[b.Command] || !state.shows(b) {
			continue
		}
		seen[b.Command] = true
		bindings := v.keymap.GetBindingsForCommand(b.Command, state.Mode)

		desc, collapsed := collapsedCategories[b.Category]
		if !collapsed {
			hints = append(hints, hint{keys: hintKeys(bindings), desc: b.Description})
			continue
		}

		keys := runeKeys(bindings)
		if len(keys) == 0 {
			continue
		}
		if i, ok := groups[b.Category]; ok {
			hints[i].keys = append(hints[i].keys, keys...)
			continue
		}
		groups[b.Category] = len(hints)
		hints = append(hints, hint{keys: keys, desc: desc})
	}
	return hints
}

// hintKeys prefers printable keys; a command bound only to special keys
// lists those.
func hintKeys(bindings []keymap.KeyBinding) []string {
	if keys := runeKeys(bindings); len(keys) > 0 {
		return keys
	}
	keys := make([]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.String()
	}
	return keys
}

func runeKeys(bindings []keymap.KeyBinding) []string {
	var keys []string
	for _, b := range bindings {
		if b.IsRune() {
			keys = append(keys, b.String())
		}
	}
	return keys
}

func scrollIndicator(percent float64) string {
	p := max(0, min(100, int(percent*100+0.5)))
	return fmt.Sprintf("%d%%", p)
}
