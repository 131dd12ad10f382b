package handlers

import (
	"unicode/utf8"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/models"
)

// Handle routes one key event to its entry point. The caller holds the
// App lock.
//
// While the current screen is loading only Esc, the horizontal keys and
// server tabs are handled, plus editing of an open input box.
func Handle(a *app.App, key models.Key) {
	if a.IsLoading && !allowedWhileLoading(a, key) {
		return
	}
	switch key.Code {
	case models.KeyTab:
		a.NextServer()
	case models.KeyBackTab:
		a.PreviousServer()
	case models.KeyEsc:
		HandleEsc(a)
	case models.KeyEnter:
		HandleSubmit(a)
	case models.KeyUp:
		HandleScrollUp(a)
	case models.KeyDown:
		HandleScrollDown(a)
	case models.KeyHome:
		HandleHome(a)
	case models.KeyEnd:
		HandleEnd(a)
	case models.KeyLeft:
		HandleLeftRight(a, -1)
	case models.KeyRight:
		HandleLeftRight(a, 1)
	case models.KeyBackspace:
		HandleBackspace(a)
	case models.KeyRune:
		HandleChar(a, key.Rune)
	}
}

func allowedWhileLoading(a *app.App, key models.Key) bool {
	switch key.Code {
	case models.KeyEsc, models.KeyTab, models.KeyBackTab, models.KeyLeft, models.KeyRight:
		return true
	}
	return IsTextInput(a.CurrentRoute().Block)
}

// IsTextInput reports whether block edits the shared input buffer.
func IsTextInput(block models.Block) bool {
	switch block {
	case models.BlockFilter, models.BlockSearch, models.BlockAddSearchInput:
		return true
	}
	return false
}

func currentList(a *app.App) app.ListView {
	route := a.CurrentRoute()
	return a.ListFor(route.Backend, route.Block)
}

// selection returns the field selection of an open multi-step prompt.
func selection(a *app.App) *models.BlockSelection {
	route := a.CurrentRoute()
	d := a.ServarrData(route.Backend)
	switch {
	case route.Block == models.BlockDeletePrompt && d.Delete != nil:
		return d.Delete.Selection
	case route.Block == models.BlockAddPrompt && d.Add != nil:
		return d.Add.Selection
	}
	return nil
}

// HandleScrollUp moves the cursor of the current table or prompt up.
func HandleScrollUp(a *app.App) {
	if s := selection(a); s != nil {
		s.Previous()
		return
	}
	if l := currentList(a); l != nil {
		l.ScrollUp()
	}
}

// HandleScrollDown moves the cursor of the current table or prompt down.
func HandleScrollDown(a *app.App) {
	if s := selection(a); s != nil {
		s.Next()
		return
	}
	if l := currentList(a); l != nil {
		l.ScrollDown()
	}
}

// HandleHome jumps to the first row.
func HandleHome(a *app.App) {
	if l := currentList(a); l != nil {
		l.ScrollToTop()
	}
}

// HandleEnd jumps to the last row.
func HandleEnd(a *app.App) {
	if l := currentList(a); l != nil {
		l.ScrollToBottom()
	}
}

// HandleLeftRight handles the horizontal keys; delta is -1 for left and 1
// for right. Prompts toggle yes/no or cycle the focused option; details
// screens switch detail tabs; top-level screens switch main tabs.
func HandleLeftRight(a *app.App, delta int) {
	route := a.CurrentRoute()
	d := a.ServarrData(route.Backend)

	if _, ok := Prompts[route.Block]; ok {
		d.Prompt.Toggle()
		return
	}
	switch route.Block {
	case models.BlockDeletePrompt:
		if d.Delete != nil && d.Delete.Selection.IsLast() {
			d.Prompt.Toggle()
		}
		return
	case models.BlockAddPrompt:
		if d.Add == nil {
			return
		}
		if d.Add.Selection.IsLast() {
			d.Prompt.Toggle()
		} else {
			d.Add.CycleFocused(delta)
		}
		return
	}

	if IsTextInput(route.Block) {
		return
	}
	if tabs := d.DetailTabs; tabs != nil && route.HasParent() && tabs.Find(route.Block) == tabs.Index() {
		switchTab(a, tabs, delta)
		return
	}
	if !route.HasParent() && d.MainTabs.Find(route.Block) >= 0 {
		switchTab(a, d.MainTabs, delta)
	}
}

func switchTab(a *app.App, tabs *models.TabState, delta int) {
	if delta < 0 {
		tabs.Previous()
	} else {
		tabs.Next()
	}
	a.PopAndPushRoute(tabs.Current().Route)
	a.ShouldRefresh = true
}

// HandleChar handles a printable key: it is typed into the open input
// box, or else runs the command bound to it on the current screen.
func HandleChar(a *app.App, r rune) {
	route := a.CurrentRoute()
	if IsTextInput(route.Block) {
		d := a.ServarrData(route.Backend)
		d.Input += string(r)
		return
	}
	if IsPrompt(route.Block) {
		return
	}
	runCommand(a, r)
}

// HandleBackspace deletes the last character of the input box.
func HandleBackspace(a *app.App) {
	route := a.CurrentRoute()
	if !IsTextInput(route.Block) {
		return
	}
	d := a.ServarrData(route.Backend)
	if d.Input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(d.Input)
	d.Input = d.Input[:len(d.Input)-size]
}

// HandleEsc dismisses the error banner if one is shown, otherwise closes
// the current input, prompt, filter or screen.
func HandleEsc(a *app.App) {
	if a.Error != "" {
		a.ClearError()
		return
	}

	route := a.CurrentRoute()
	d := a.ServarrData(route.Backend)

	switch {
	case IsTextInput(route.Block):
		d.Input = ""
		a.PopRoute()
	case route.Block == models.BlockDeletePrompt:
		d.Delete = nil
		d.Prompt.Reset()
		a.PopRoute()
	case route.Block == models.BlockAddPrompt:
		d.Add = nil
		d.Prompt.Reset()
		a.PopRoute()
	case IsPrompt(route.Block):
		d.Prompt.Reset()
		a.PopRoute()
	case route.Block == models.BlockAddSearchResults:
		clearAddSearch(a, route.Backend)
		a.PopRoute()
		a.ShouldRefresh = true
	default:
		if l := currentList(a); l != nil && l.Filter() != "" {
			l.ResetFilter()
			return
		}
		a.PopRoute()
		d.DetailTabs = detailTabsFor(a.CurrentRoute())
	}
}

// HandleSubmit handles Enter: it submits the open input or prompt, or
// opens the details of the selected row.
func HandleSubmit(a *app.App) {
	route := a.CurrentRoute()
	d := a.ServarrData(route.Backend)

	if spec, ok := Prompts[route.Block]; ok {
		submitPrompt(a, spec)
		return
	}

	switch route.Block {
	case models.BlockDeletePrompt:
		submitDeletePrompt(a)
	case models.BlockAddPrompt:
		submitAddPrompt(a)
	case models.BlockFilter, models.BlockSearch:
		l := a.ListFor(route.Backend, route.Parent)
		if l == nil {
			a.PopRoute()
			return
		}
		var matched bool
		if route.Block == models.BlockFilter {
			matched = l.ApplyFilter(d.Input)
		} else {
			matched = l.Search(d.Input)
		}
		if matched {
			d.Input = ""
			a.PopRoute()
		}
	case models.BlockAddSearchInput:
		if d.Input == "" {
			return
		}
		clearAddSearch(a, route.Backend)
		d.AddQuery = d.Input
		d.Input = ""
		a.PopAndPushRoute(models.NewRoute(route.Backend, models.BlockAddSearchResults).WithParent(route.Parent))
		a.ShouldRefresh = true
	case models.BlockAddSearchResults:
		openAddPrompt(a)
	case models.BlockManualSearch:
		openPrompt(a, models.BlockDownloadReleasePrompt)
	case models.BlockSystemTasks:
		openPrompt(a, models.BlockStartTaskPrompt)
	default:
		openDetails(a)
	}
}

func clearAddSearch(a *app.App, b models.Backend) {
	a.ServarrData(b).AddQuery = ""
	switch b {
	case models.Radarr:
		a.Radarr.AddSearchResults.SetItems(nil)
	case models.Sonarr:
		a.Sonarr.AddSearchResults.SetItems(nil)
	case models.Lidarr:
		a.Lidarr.AddSearchResults.SetItems(nil)
	}
}
