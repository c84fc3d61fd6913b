package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/ql/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	if a.mode == ModeForm {
		return a.renderForm()
	}
	return a.renderPanel()
}

// renderPanel renders the ordered shortcut list with cursor and grab markers.
func (a App) renderPanel() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Quick Links"))
	b.WriteString("\n\n")

	shortcuts := a.engine.Shortcuts()
	if len(shortcuts) == 0 {
		b.WriteString(a.styles.Empty.Render("No shortcuts yet. Press a to add one."))
		b.WriteString("\n")
		return a.styles.App.Render(b.String() + "\n" + a.renderHelp())
	}

	maxVisible := layout.CalculateListHeight(a.height, a.layoutCfg.List)
	start, end := layout.CalculateVisibleListItems(maxVisible, a.cursor, len(shortcuts))

	for i := start; i < end; i++ {
		s := shortcuts[i]
		name := layout.DisplayName(s.Name, a.layoutCfg.Text)
		row := fmt.Sprintf("%-8s %s", name, a.styles.URL.Render(s.URL))

		switch {
		case s.ID == a.grabbedID:
			b.WriteString(a.styles.ItemGrabbed.Render("◆ " + row))
		case i == a.cursor:
			b.WriteString(a.styles.ItemSelected.Render("> " + row))
		default:
			b.WriteString(a.styles.Item.Render("  " + row))
		}
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Status.Render(a.status))
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderHelp())

	return a.styles.App.Render(b.String())
}

// renderHelp renders the context-dependent key hints.
func (a App) renderHelp() string {
	if a.grabbedID != "" {
		return a.styles.Help.Render("j/k: move item  m/space: drop  d: delete  q: quit")
	}
	return a.styles.Help.Render("j/k: move  o: open  a: add  e: edit  d: delete  m: grab  Y: copy URL  q: quit")
}

// renderForm renders the add/edit modal centered in the terminal.
func (a App) renderForm() string {
	width := layout.CalculateModalWidth(a.width, a.layoutCfg.Modal)

	title := "Add Shortcut"
	if a.form.EditingID != "" {
		title = "Edit Shortcut"
	}

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(a.form.URLInput.View())
	b.WriteString("\n")
	b.WriteString(a.form.NameInput.View())
	b.WriteString("\n")

	if a.form.Message != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.form.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("tab: switch field  enter: save  esc: cancel"))

	modal := a.styles.Modal.Width(width).Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
