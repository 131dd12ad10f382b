package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the color and label of a result box.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

var resultKinds = map[ResultType]struct {
	marker string
	label  string
	color  lipgloss.Color
}{
	ResultSuccess: {"✓", "SUCCESS", SuccessColor},
	ResultFailure: {"✗", "FAILED", ErrorColor},
	ResultWarning: {"⚠", "WARNING", WarningColor},
}

// Result is the box printed after a command that changes server state.
type Result struct {
	Type            ResultType
	Title           string
	Details         []Param
	Error           error
	Troubleshooting []string
	Width           int
}

// NewSuccessResult builds a success box.
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult builds a failure box listing tips under
// "Troubleshooting".
func NewFailureResult(title string, err error, tips []string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Troubleshooting: tips, Width: GetTerminalWidth()}
}

// NewWarningResult builds a warning box.
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth overrides the rendering width.
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line.
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render draws the box.
func (r *Result) Render() string {
	width := clampWidth(r.Width)
	kind := resultKinds[r.Type]

	heading := lipgloss.NewStyle().Foreground(kind.color).Bold(true).
		Render(fmt.Sprintf("   %s  %s  ─  %s", kind.marker, kind.label, r.Title))
	sections := []string{"", heading, ""}

	if r.Error != nil {
		sections = append(sections, errorText.Width(width-10).Render("   Error: "+r.Error.Error()), "")
	}
	if len(r.Details) > 0 {
		for _, d := range r.Details {
			sections = append(sections, detailKey.Render("   "+d.Key+":")+" "+plain.Render(d.Value))
		}
		sections = append(sections, "")
	}
	if len(r.Troubleshooting) > 0 {
		sections = append(sections, r.renderTips(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(kind.color).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(sections, "\n"))
}

func (r *Result) renderTips(width int) string {
	lines := []string{muted.Bold(true).Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, muted.Render("  • "+tip))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) String() string {
	return r.Render()
}
