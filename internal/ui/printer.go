package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Output formats accepted by the --output flag.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Column is one column of a printed table.
type Column[T any] struct {
	Title string
	Value func(T) string
}

// Printer writes command output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a printer for the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		width: GetTerminalWidth(),
	}
}

// Width returns the rendering width
func (p *Printer) Width() int {
	return p.width
}

// Print writes content without a trailing newline
func (p *Printer) Print(content string) {
	fmt.Fprint(p.out, content)
}

// Println writes content with a trailing newline
func (p *Printer) Println(content string) {
	fmt.Fprintln(p.out, content)
}

// Newline writes an empty line
func (p *Printer) Newline() {
	fmt.Fprintln(p.out)
}

// PrintHeader renders and prints a header
func (p *Printer) PrintHeader(h *Header) {
	h.SetWidth(p.width)
	p.Println(h.Render())
	p.Newline()
}

// PrintResult renders and prints a result box
func (p *Printer) PrintResult(r *Result) {
	r.SetWidth(p.width)
	p.Println(r.Render())
}

// PrintSuccess prints a success box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.PrintResult(NewSuccessResult(title, details...))
}

// PrintFailure prints a failure box with troubleshooting tips
func (p *Printer) PrintFailure(title string, err error, tips []string) {
	p.PrintResult(NewFailureResult(title, err, tips))
}

// PrintJSON writes v as indented JSON.
func (p *Printer) PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	p.Println(string(data))
	return nil
}

// PrintTable writes rows as an aligned table with a bold header line.
func PrintTable[T any](p *Printer, rows []T, cols []Column[T]) {
	if len(rows) == 0 {
		p.Println(color.New(color.Faint).Sprint("Nothing to show"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(p.width / 2)

	bold := color.New(color.Bold)
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = bold.Sprint(strings.ToUpper(c.Title))
	}
	tbl.AddRow(header...)

	for _, row := range rows {
		cells := make([]interface{}, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(row)
		}
		tbl.AddRow(cells...)
	}
	p.Println(tbl.String())
}

// Print writes rows in the given format.
func Print[T any](p *Printer, format string, rows []T, cols []Column[T]) error {
	switch format {
	case FormatJSON:
		if rows == nil {
			rows = []T{}
		}
		return p.PrintJSON(rows)
	case FormatTable, "":
		PrintTable(p, rows, cols)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatJSON)
	}
}
