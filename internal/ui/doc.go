// Package ui renders the output of the one-shot servdash commands.
//
// The interactive dashboard lives in package tui. The components here
// follow a "print and exit" pattern instead:
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure and warning boxes
//   - Confirm: warning box that asks the user to type "yes"
//   - Printer: writes the above, plus tables and JSON, to an io.Writer
//
// Tables are aligned with uitable and their header row is bolded with
// fatih/color, which turns itself off when stdout is not a terminal.
//
// # Usage Example
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader(ui.NewHeader("Radarr downloads", "servdash radarr list downloads",
//	    ui.Param{Key: "Server", Value: "main"}))
//	cols := []ui.Column[servarr.QueueRecord]{
//	    {Title: "Title", Value: func(q servarr.QueueRecord) string { return q.Title }},
//	}
//	if err := ui.Print(p, format, queue, cols); err != nil {
//	    return err
//	}
package ui
