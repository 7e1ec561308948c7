package tui

import "github.com/charmbracelet/bubbles/key"

// sessionKeys holds key bindings for the interactive session.
type sessionKeys struct {
	Submit     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// ShortHelp returns the session bindings for the help bar.
func (k sessionKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ScrollUp, k.ScrollDown, k.Quit}
}

// FullHelp returns the session bindings grouped for expanded help.
func (k sessionKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit},
		{k.ScrollUp, k.ScrollDown, k.Quit},
	}
}

// SessionKeyMap returns the key bindings for the interactive session.
func SessionKeyMap() sessionKeys {
	return sessionKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
