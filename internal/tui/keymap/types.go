// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so the dashboard's Update method dispatches
// on a Command instead of matching raw keys.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeLoading   Mode = "loading"   // Waiting for insights; only quit works
	ModeDashboard Mode = "dashboard" // Charts rendered
	ModePrompt    Mode = "prompt"    // Typing a district to freeze
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	// Freeze
	CmdFreezeDefault  Command = "freeze_default"
	CmdFreezeDistrict Command = "freeze_district"
	CmdDismissNotice  Command = "dismiss_notice"

	// Scrolling
	CmdScrollDown     Command = "scroll_down"
	CmdScrollUp       Command = "scroll_up"
	CmdScrollPageUp   Command = "scroll_page_up"
	CmdScrollPageDown Command = "scroll_page_down"
	CmdScrollToTop    Command = "scroll_to_top"
	CmdScrollToBottom Command = "scroll_to_bottom"

	// Exit
	CmdQuit Command = "quit"
)

// Prompt mode commands
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// Help display categories
const (
	CategoryFreeze    = "Freeze"
	CategoryScrolling = "Scrolling"
	CategoryGeneral   = "General"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key. Rune keys use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is the help bar text for the command.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// IsRune reports whether the binding is a printable key rather than a
// special key such as enter or pgup.
func (kb KeyBinding) IsRune() bool {
	return kb.KeyType == tea.KeyRunes
}

// Matches checks if a tea.KeyMsg matches this binding. Alt-modified keys
// never match.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns the key as shown in the help bar.
func (kb KeyBinding) String() string {
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return "space"
	}
	return string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}
