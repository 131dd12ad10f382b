package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/servdash/internal/models"
)

// keyMap defines the global key bindings shown in the footer
type keyMap struct {
	Servers key.Binding
	Tabs    key.Binding
	Move    key.Binding
	Select  key.Binding
	Back    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Servers, k.Tabs, k.Select, k.Back, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Servers, k.Tabs, k.Move},
		{k.Select, k.Back, k.Refresh},
		{k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Servers: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "server"),
		),
		Tabs: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "tab"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "home", "end"),
			key.WithHelp("↑/↓", "move"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TranslateKey converts a terminal key message into the handlers' Key.
// ok is false for keys the handlers do not react to.
func TranslateKey(msg tea.KeyMsg) (models.Key, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return models.Key{Code: models.KeyUp}, true
	case tea.KeyDown:
		return models.Key{Code: models.KeyDown}, true
	case tea.KeyLeft:
		return models.Key{Code: models.KeyLeft}, true
	case tea.KeyRight:
		return models.Key{Code: models.KeyRight}, true
	case tea.KeyHome:
		return models.Key{Code: models.KeyHome}, true
	case tea.KeyEnd:
		return models.Key{Code: models.KeyEnd}, true
	case tea.KeyEnter:
		return models.Key{Code: models.KeyEnter}, true
	case tea.KeyEsc:
		return models.Key{Code: models.KeyEsc}, true
	case tea.KeyBackspace:
		return models.Key{Code: models.KeyBackspace}, true
	case tea.KeyTab:
		return models.Key{Code: models.KeyTab}, true
	case tea.KeyShiftTab:
		return models.Key{Code: models.KeyBackTab}, true
	case tea.KeySpace:
		return models.RuneKey(' '), true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return models.RuneKey(msg.Runes[0]), true
		}
	}
	return models.Key{}, false
}
