package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/adaptergen/pkg/models"
	"github.com/pluqqy/adaptergen/pkg/substitute"
)

var (
	activeColor   = lipgloss.Color("170")
	inactiveColor = lipgloss.Color("240")

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(lipgloss.Color("245"))

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// updateFormContent redraws the field list and keeps the focused row visible
func (m *FormModel) updateFormContent() {
	var content strings.Builder
	focusLine := 0
	line := 0

	write := func(s string) {
		content.WriteString(s)
		line += strings.Count(s, "\n")
	}

	write(sectionStyle.Render("FIELDS"))
	write("\n\n")

	for i := range m.fields {
		f := &m.fields[i]
		focused := i == m.focusIndex
		if focused {
			focusLine = line
		}

		var control string
		if f.isCheckbox() {
			control = "[ ]"
			if f.checked {
				control = "[✓]"
			}
		} else {
			control = f.input.View()
		}

		row := labelStyle.Render(f.desc.DisplayLabel()+":") + " " + control
		if focused {
			write(focusedStyle.Render("▸ " + row))
		} else {
			write(normalStyle.Render("  " + row))
		}
		write("\n")

		if f.desc.Kind == models.KindNumber && f.input.Value() != "" {
			if _, ok := substitute.ParseInteger(f.input.Value()); !ok {
				write(errorStyle.Render("    not an integer, renders as " + substitute.NotANumber))
				write("\n")
			}
		}

		if focused && f.desc.Help != "" {
			write(commentStyle.Render("    # " + f.desc.Help))
			write("\n")
		}
	}

	m.formViewport.SetContent(content.String())

	if focusLine < m.formViewport.YOffset {
		m.formViewport.SetYOffset(focusLine)
	} else if bottom := focusLine + 2; bottom >= m.formViewport.YOffset+m.formViewport.Height {
		m.formViewport.SetYOffset(bottom - m.formViewport.Height + 1)
	}
}

func (m *FormModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	formWidth, previewWidth := m.paneWidths()

	formPane := renderPane("INBOUND ADAPTER SETTINGS", m.formViewport.View(), formWidth, true)

	body := formPane
	if m.showPreview {
		heading := "TEMPLATE"
		if m.submitted {
			heading = "GENERATED CLASS"
		}
		previewPane := renderPane(heading, m.previewViewport.View(), previewWidth, false)
		body = lipgloss.JoinHorizontal(lipgloss.Top, formPane, previewPane)
	}

	var s strings.Builder
	s.WriteString(body)
	s.WriteString("\n")

	if m.confirm.Active() {
		s.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(m.confirm.View()))
		return s.String()
	}

	help := []string{
		"tab/shift+tab navigate",
		"space toggle",
		"^s generate",
	}
	if m.submitted {
		help = append(help, "^y copy", "^d download")
	}
	if m.showPreview {
		help = append(help, "pgup/pgdn scroll")
	}
	help = append(help, "esc quit")

	helpStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(inactiveColor).
		Width(m.width-2).
		Padding(0, 1)
	helpContent := lipgloss.NewStyle().
		Width(m.width - 6).
		Align(lipgloss.Right).
		Render(strings.Join(help, "  "))
	s.WriteString(helpStyle.Render(helpContent))

	return s.String()
}

// renderPane draws a bordered pane with a "HEADING ::::" title row
func renderPane(heading, body string, width int, active bool) string {
	color := inactiveColor
	if active {
		color = activeColor
	}

	remaining := width - 4 - len(heading) - 3
	if remaining < 0 {
		remaining = 0
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(heading) +
		" " + lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(":", remaining))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width - 2).
		PaddingLeft(1).
		PaddingRight(1)

	return border.Render(title + "\n\n" + body)
}
