package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type App struct {
	form      *FormModel
	width     int
	height    int
	statusMsg string
	statusSeq int
}

const statusTimeout = 3 * time.Second

func NewApp(cfg FormConfig) *App {
	return &App{
		form: NewFormModel(cfg),
	}
}

func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case clearStatusMsg:
		// a newer message restarted the timer
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	m, cmd := a.form.Update(msg)
	if fm, ok := m.(*FormModel); ok {
		a.form = fm
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.form.View()

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		content = lipgloss.JoinVertical(lipgloss.Top, content, statusStyle.Render(a.statusMsg))
	}

	return content
}

// Form exposes the form model, mainly for tests
func (a *App) Form() *FormModel {
	return a.form
}

// StatusMsg sets the text of the status bar until it times out
type StatusMsg string

type clearStatusMsg struct {
	seq int
}
