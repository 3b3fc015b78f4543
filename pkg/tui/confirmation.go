package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel is an inline y/n question that captures keys while active
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation. Either callback may be nil.
func (m *ConfirmationModel) Show(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

func (m *ConfirmationModel) Hide() {
	m.active = false
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}

	return nil
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	return fmt.Sprintf("%s %s", m.message, formatConfirmOptions(m.destructive))
}

// formatConfirmOptions colours the answer keys; for destructive actions
// "y" is red and "n" green
func formatConfirmOptions(destructive bool) string {
	yesColor, noColor := lipgloss.Color("82"), lipgloss.Color("196")
	if destructive {
		yesColor, noColor = noColor, yesColor
	}

	yes := lipgloss.NewStyle().Foreground(yesColor).Bold(true).Render("y")
	no := lipgloss.NewStyle().Foreground(noColor).Bold(true).Render("n")
	return fmt.Sprintf("[%s/%s]", yes, no)
}
