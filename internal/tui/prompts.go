package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/handlers"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// renderPrompt draws the confirmation dialog of route.
func (m Model) renderPrompt(route models.Route, f frame) string {
	d := m.App.ServarrData(route.Backend)
	width := SafeModalWidth(ModalWidth, f.width)
	body := lipgloss.NewStyle().Width(width - 6)

	var content string
	switch route.Block {
	case models.BlockDeletePrompt:
		content = renderDeletePrompt(d, body)
	case models.BlockAddPrompt:
		content = renderAddPrompt(d, body)
	default:
		spec := handlers.Prompts[route.Block]
		content = lipgloss.JoinVertical(lipgloss.Center,
			RenderTitle(spec.Title),
			"",
			body.Render(spec.Message(m.App, route.Backend)),
			"",
			RenderButtons(d.Prompt.Confirm),
		)
	}
	return PromptBoxStyle.Width(width).Render(content)
}

func renderDeletePrompt(d *app.ServarrData, body lipgloss.Style) string {
	p := d.Delete
	if p == nil {
		return ""
	}
	focus := p.Selection.CurrentBlock()
	return lipgloss.JoinVertical(lipgloss.Center,
		RenderTitle("Delete"),
		"",
		body.Render(fmt.Sprintf("Do you really want to delete:\n%s?", p.Title)),
		"",
		lipgloss.JoinVertical(lipgloss.Left,
			RenderCheckbox("Delete files", p.DeleteFiles, focus == models.BlockDeleteToggleDeleteFiles),
			RenderCheckbox("Add list exclusion", p.AddListExclusion, focus == models.BlockDeleteToggleListExclusion),
		),
		"",
		renderConfirm(d.Prompt.Confirm, p.Selection.IsLast()),
	)
}

func renderAddPrompt(d *app.ServarrData, body lipgloss.Style) string {
	p := d.Add
	if p == nil {
		return ""
	}
	focus := p.Selection.CurrentBlock()
	option := func(label, value string, block models.Block) string {
		line := RenderField(label, "◀ "+value+" ▶")
		if focus == block {
			return SelectedCellStyle.Render(line)
		}
		return CellStyle.Render(line)
	}
	var profile string
	if len(p.QualityProfiles) > 0 {
		profile = p.QualityProfiles[p.QualityProfile].Name
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		RenderTitle("Add "+addTitle(p.Item)),
		"",
		lipgloss.JoinVertical(lipgloss.Left,
			option("Root Folder", p.RootFolderPath(), models.BlockAddSelectRootFolder),
			option("Quality Profile", profile, models.BlockAddSelectQualityProfile),
			option("Monitor", p.MonitorOption(), models.BlockAddSelectMonitor),
		),
		"",
		renderConfirm(d.Prompt.Confirm, p.Selection.IsLast()),
	)
}

func addTitle(item any) string {
	switch v := item.(type) {
	case servarr.Movie:
		return fmt.Sprintf("%s (%d)", v.Title, v.Year)
	case servarr.Series:
		return fmt.Sprintf("%s (%d)", v.Title, v.Year)
	case servarr.Artist:
		return v.ArtistName
	}
	return ""
}

// renderConfirm draws the Yes/No buttons of a multi-step prompt, dimmed
// until the confirm step has the focus.
func renderConfirm(yes, focused bool) string {
	if !focused {
		return SubtitleStyle.Render("Yes  No")
	}
	return RenderButtons(yes)
}

// renderInput draws the filter, search or add box over its table.
func (m Model) renderInput(route models.Route, f frame) string {
	d := m.App.ServarrData(route.Backend)

	title := "Filter"
	switch route.Block {
	case models.BlockSearch:
		title = "Search"
	case models.BlockAddSearchInput:
		title = "Add " + route.Backend.Title()
	}

	input := m.Input
	input.Width = SafeModalWidth(ModalWidth, f.width) - 8
	input.SetValue(d.Input)
	return InputBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, RenderTitle(title), input.View()))
}
