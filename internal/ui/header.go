package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one "Key: Value" line of a header or result box.
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed above a command's table output:
//
//	╭──────────────────────────────╮
//	│  RADARR DOWNLOADS            │
//	│  servdash radarr list ...    │
//	│  ──────────────────────────  │
//	│  Server: main                │
//	╰──────────────────────────────╯
type Header struct {
	Title   string
	Command string
	Params  []Param
	Width   int
}

// NewHeader sizes a header to the terminal.
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{Title: title, Command: command, Params: params, Width: GetTerminalWidth()}
}

// SetWidth overrides the rendering width.
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render draws the header. Params keep their order.
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	lines := []string{
		bannerTitle.Render(strings.ToUpper(h.Title)),
		bannerMuted.Render(h.Command),
	}
	if len(h.Params) > 0 {
		rule := lipgloss.NewStyle().Foreground(PrimaryColor).Render(strings.Repeat("─", width-6))
		lines = append(lines, rule)
		for _, p := range h.Params {
			lines = append(lines, bannerMuted.Render(p.Key+":")+" "+plain.Render(p.Value))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func (h *Header) String() string {
	return h.Render()
}
