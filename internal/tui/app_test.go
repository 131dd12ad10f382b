package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

func newTestModel(t *testing.T) (Model, chan network.Request) {
	t.Helper()
	cfg := &config.Config{
		Radarr:      []config.ServarrConfig{{Name: "main", Host: "localhost", APIToken: "r"}},
		Sonarr:      []config.ServarrConfig{{Name: "tv", Host: "localhost", APIToken: "s"}},
		Preferences: config.Preferences{TickUntilPoll: 1000},
	}
	queue := make(chan network.Request, 128)
	a, err := app.New(cfg, queue)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	m := NewModel(a, 50*time.Millisecond)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), queue
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want models.Key
		ok   bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, models.Key{Code: models.KeyUp}, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, models.Key{Code: models.KeyEnter}, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, models.Key{Code: models.KeyEsc}, true},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, models.Key{Code: models.KeyBackTab}, true},
		{"rune", runes("d"), models.RuneKey('d'), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, models.RuneKey(' '), true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d"), Alt: true}, models.Key{}, false},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, models.Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("TranslateKey() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTickRunsOnTick(t *testing.T) {
	m, queue := newTestModel(t)

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m.App.Lock()
	firstRender := m.App.FirstRender
	m.App.Unlock()
	if firstRender {
		t.Error("FirstRender should be cleared after the first tick")
	}
	if len(queue) == 0 {
		t.Error("the first tick should dispatch the initial fetches")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	if _, cmd := m.Update(runes("q")); !isQuit(cmd) {
		t.Error("q on a table should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestQuitKeyIsTypedInInput(t *testing.T) {
	m, _ := newTestModel(t)
	m.App.Radarr.Movies.SetItems([]servarr.Movie{{ID: 1, Title: "Arrival"}})

	m.Update(runes("f"))
	_, cmd := m.Update(runes("q"))

	if isQuit(cmd) {
		t.Fatal("q in the filter box should not quit")
	}
	if got := m.App.Radarr.Input; got != "q" {
		t.Errorf("Input = %q, want q", got)
	}
}

func TestPasteIntoInput(t *testing.T) {
	m, _ := newTestModel(t)
	m.App.Radarr.Movies.SetItems([]servarr.Movie{{ID: 1, Title: "Arrival"}})

	m.Update(runes("f"))
	m.Update(runes("arri"))

	if got := m.App.Radarr.Input; got != "arri" {
		t.Errorf("Input = %q, want arri", got)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(runes("?"))
	if !updated.(Model).Help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(nil, time.Second)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestViewShowsTable(t *testing.T) {
	m, _ := newTestModel(t)
	m.App.Radarr.Movies.SetItems([]servarr.Movie{
		{ID: 1, Title: "Arrival", Year: 2016},
		{ID: 2, Title: "Dune", Year: 2021},
	})

	view := m.View()

	for _, want := range []string{AppName, "Radarr: main", "Library", "Arrival", "Dune"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() does not contain %q", want)
		}
	}
}

func TestViewShowsErrorAndPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	m.App.Radarr.Movies.SetItems([]servarr.Movie{{ID: 1, Title: "Arrival"}})

	m.Update(runes("d"))
	view := m.View()
	if !strings.Contains(view, "Delete files") {
		t.Error("the delete dialog should be drawn")
	}

	m.App.HandleError(network.GetMovies(), errors.New("connection refused"))
	if view := m.View(); !strings.Contains(view, "connection refused") {
		t.Error("the error banner should be drawn")
	}
}
