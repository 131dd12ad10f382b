package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared with the dashboard.
var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#FFA500")
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Output width bounds. Boxes are never narrower than MinWidth, even when
// stdout is piped.
const (
	MinWidth = 60
	MaxWidth = 100
)

var (
	bannerTitle = lipgloss.NewStyle().Foreground(TextColor).Bold(true).PaddingLeft(2)
	bannerMuted = lipgloss.NewStyle().Foreground(MutedColor).PaddingLeft(2)
	plain       = lipgloss.NewStyle().Foreground(TextColor)
	muted       = lipgloss.NewStyle().Foreground(MutedColor)
	detailKey   = lipgloss.NewStyle().Foreground(MutedColor).Width(15)
	errorText   = lipgloss.NewStyle().Foreground(ErrorColor)
)

// GetTerminalWidth returns the width of stdout clamped to
// [MinWidth, MaxWidth]. A non-terminal stdout yields MinWidth.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	switch {
	case err != nil || width < MinWidth:
		return MinWidth
	case width > MaxWidth:
		return MaxWidth
	default:
		return width
	}
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func clampWidth(width int) int {
	return max(width, MinWidth)
}
