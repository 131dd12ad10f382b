package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/version"
)

// Branding shown in the header.
const (
	AppName   = "SERVDASH"
	GitHubURL = "github.com/muurk/servdash"
)

// AppVersion is the version shown next to AppName.
func AppVersion() string {
	return version.Version
}

// Layout limits.
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
	ModalWidth       = 70 // Preferred prompt width
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Styles shared by the views.
var (
	// Title style for panels and prompts
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true).
			Underline(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Table styles
	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedCellStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(HighlightColor).
				Bold(true).
				Reverse(true)

	// Error banner style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	// Prompt box style
	PromptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)

	// Info box style for detail panels
	InfoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Input box style
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Button styles for yes/no prompts
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Foreground(SubtleColor)

	SelectedButtonStyle = lipgloss.NewStyle().
				Padding(0, 3).
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true)

	// Label style for key/value panels
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(18)

	SuccessTextStyle = lipgloss.NewStyle().Foreground(SecondaryColor)
	WarningTextStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorTextStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
)

// RenderTitle renders a panel or dialog title.
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderError renders the dismissible error banner
func RenderError(text string, width int) string {
	return ErrorStyle.Width(SafeModalWidth(width, width)).Render("✗ " + text + "  (esc to dismiss)")
}

// RenderTabs renders a tab bar with the selected tab highlighted.
func RenderTabs(tabs *models.TabState) string {
	if tabs == nil {
		return ""
	}
	parts := make([]string, 0, len(tabs.Tabs))
	for i, tab := range tabs.Tabs {
		if i == tabs.Index() {
			parts = append(parts, ActiveTabStyle.Render(tab.Title))
		} else {
			parts = append(parts, InactiveTabStyle.Render(tab.Title))
		}
	}
	return strings.Join(parts, InactiveTabStyle.Render(" │ "))
}

// RenderField renders one "label  value" line of a details panel.
func RenderField(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}

// RenderButtons renders the Yes/No pair of a prompt.
func RenderButtons(yes bool) string {
	yesStyle, noStyle := ButtonStyle, SelectedButtonStyle
	if yes {
		yesStyle, noStyle = SelectedButtonStyle, ButtonStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, yesStyle.Render("Yes"), "  ", noStyle.Render("No"))
}

// RenderCheckbox renders a toggle option of a prompt.
func RenderCheckbox(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[✓]"
	}
	line := box + " " + label
	if focused {
		return SelectedCellStyle.Render(line)
	}
	return CellStyle.Render(line)
}

// BuildHeaderContent creates header content with app name, version, the
// server tab bar and the loading spinner.
func BuildHeaderContent(servers string, spinner string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	line := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if spinner != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", SpinnerStyle.Render(spinner))
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, servers)
}

// BuildFooterContent styles the help line.
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// a header with the app name and server tabs, the content, and a footer
// with context-sensitive help pinned to the bottom.
func RenderApplicationContainer(header, content, footerText string, terminalWidth, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	styledHeader := headerStyle.Render(header)
	styledFooter := footerStyle.Render(BuildFooterContent(footerText))

	// Content fills whatever the header and footer leave.
	contentHeight := terminalHeight - 2 - lipgloss.Height(styledHeader) - lipgloss.Height(styledFooter)
	if contentHeight < 1 {
		contentHeight = 1
	}
	styledContent := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// SafeModalWidth returns the smaller of requestedWidth and the terminal
// width minus a margin, never going below 40 columns.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 40 {
		maxWidth = 40
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// RenderModal centers modal content in a width x height area, dimming the
// rest with a shade pattern.
func RenderModal(modalContent string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
