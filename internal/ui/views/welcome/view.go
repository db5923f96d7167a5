package welcome

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sabalabor/internal/ui/components"
	"sabalabor/internal/ui/theme"
)

type Choice int

const (
	ChooseLogin Choice = iota
	ChooseRegister
)

// ChosenMsg asks the root model to push the chosen auth screen.
type ChosenMsg struct{ Choice Choice }

var options = []string{"Log in", "Create an account"}

type Model struct {
	cursor int
	width  int
	height int
}

func New() Model { return Model{} }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor + len(options) - 1) % len(options)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(options)
		case "l":
			return m, choose(ChooseLogin)
		case "r":
			return m, choose(ChooseRegister)
		case "enter":
			return m, choose(Choice(m.cursor))
		}
	}
	return m, nil
}

func choose(c Choice) tea.Cmd {
	return func() tea.Msg { return ChosenMsg{Choice: c} }
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(components.Logo() + "\n\n")
	sb.WriteString(theme.Muted.Render("Find trusted workers. Find work you trust.") + "\n\n")
	for i, opt := range options {
		if i == m.cursor {
			sb.WriteString(theme.Title.Render("› "+opt) + "\n")
		} else {
			sb.WriteString("  " + opt + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("l: log in  r: register  q: quit"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}
