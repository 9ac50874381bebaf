package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the dashboard key bindings. Descriptions double as
// help bar text.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeLoading:   defaultLoadingBindings(),
			ModeDashboard: defaultDashboardBindings(),
			ModePrompt:    defaultPromptBindings(),
		},
	}
}

func defaultLoadingBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeLoading,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit", Category: CategoryGeneral},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Category: CategoryGeneral},
		},
	}
}

func defaultDashboardBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeDashboard,
		Bindings: []KeyBinding{
			// Freeze
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdFreezeDefault, Description: "freeze", Category: CategoryFreeze},
			{KeyType: tea.KeyRunes, Rune: 'F', Command: CmdFreezeDistrict, Description: "freeze district…", Category: CategoryFreeze},
			{KeyType: tea.KeyEsc, Command: CmdDismissNotice, Description: "dismiss", Category: CategoryFreeze},
			{KeyType: tea.KeyEnter, Command: CmdDismissNotice, Description: "dismiss", Category: CategoryFreeze},

			// Scrolling
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "down", Category: CategoryScrolling},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "down", Category: CategoryScrolling},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "up", Category: CategoryScrolling},
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "up", Category: CategoryScrolling},
			{KeyType: tea.KeyPgUp, Command: CmdScrollPageUp, Description: "page up", Category: CategoryScrolling},
			{KeyType: tea.KeyPgDown, Command: CmdScrollPageDown, Description: "page down", Category: CategoryScrolling},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdScrollToTop, Description: "top", Category: CategoryScrolling},
			{KeyType: tea.KeyHome, Command: CmdScrollToTop, Description: "top", Category: CategoryScrolling},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdScrollToBottom, Description: "bottom", Category: CategoryScrolling},
			{KeyType: tea.KeyEnd, Command: CmdScrollToBottom, Description: "bottom", Category: CategoryScrolling},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit", Category: CategoryGeneral},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Category: CategoryGeneral},
		},
	}
}

// Unbound keys in prompt mode go to the text input.
func defaultPromptBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModePrompt,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "acknowledge", Category: CategoryFreeze},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "cancel", Category: CategoryFreeze},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Category: CategoryGeneral},
		},
	}
}
