// Package tui implements the terminal dashboard.
//
// The dashboard is a Bubble Tea program with a single Model. It keeps no
// screen state of its own: the navigation stack, the tables and the
// prompt state all live in app.App, which the network worker updates
// concurrently. Model takes the App lock around each of the three things
// it does:
//
//   - tick: every TickRate it runs App.OnTick, which dispatches fetches
//     and polls.
//   - key: it translates the key into a models.Key and hands it to
//     handlers.Handle. q and ? are handled here unless an input box or
//     prompt is open.
//   - View: it draws the current route.
//
// # Layout
//
// Every frame is wrapped by RenderApplicationContainer:
//
//	┌────────────────────────────────────────────────────┐
//	│ SERVDASH v1.0.0 github.com/muurk/servdash  ⣾      │
//	│ Radarr: main │ Sonarr: tv                          │
//	│────────────────────────────────────────────────────│
//	│ Library │ Collections │ Downloads │ ...            │
//	│ <table, details panel or prompt>                   │
//	│────────────────────────────────────────────────────│
//	│ a add  d delete  ...                               │
//	│ tab server  ←/→ tab  enter select  ...  q quit     │
//	└────────────────────────────────────────────────────┘
//
// Tables are drawn with lipgloss/table and scroll so that the selected
// row stays visible. Sizes and times are formatted with go-humanize.
//
// # Usage Example
//
//	model := tui.NewModel(a, cfg.Preferences.TickRate())
//	program := tea.NewProgram(model, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
