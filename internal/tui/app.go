package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/handlers"
	"github.com/muurk/servdash/internal/models"
)

// tickMsg drives the frame loop.
type tickMsg time.Time

// Model is the bubbletea model of the dashboard. It owns no state of its
// own beyond layout and widgets: everything the screens show lives in
// the shared App, which Model locks around every tick, key and frame.
type Model struct {
	App      *app.App
	TickRate time.Duration

	// UI state
	Width  int
	Height int

	Spinner spinner.Model
	Input   textinput.Model
	Help    help.Model
	Keys    keyMap
}

// NewModel creates the dashboard model over a.
func NewModel(a *app.App, tickRate time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	return Model{
		App:      a,
		TickRate: tickRate,
		Spinner:  s,
		Input:    input,
		Help:     help.New(),
		Keys:     newKeyMap(),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame loop and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.TickRate), m.Spinner.Tick)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.App.Lock()
		m.App.OnTick()
		m.App.Unlock()
		return m, tick(m.TickRate)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey runs a key press through the handlers. q quits and ? toggles
// the full help everywhere except in input boxes, where they are typed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.App.Lock()
	defer m.App.Unlock()

	route := m.App.CurrentRoute()
	typing := handlers.IsTextInput(route.Block)

	if !typing && !handlers.IsPrompt(route.Block) {
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
	}

	// Pasted text arrives as one message.
	if typing && msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			handlers.Handle(m.App, models.RuneKey(r))
		}
		return m, nil
	}

	if k, ok := TranslateKey(msg); ok {
		handlers.Handle(m.App, k)
	}
	return m, nil
}
