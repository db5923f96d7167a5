package profile

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "sabalabor/internal/modules/account/dto"
	"sabalabor/internal/ui/theme"
)

type AccountPort interface {
	GetProfile(ctx context.Context) (accountdto.ProfileOutput, error)
}

type LoadedMsg struct {
	Profile accountdto.ProfileOutput
	Err     error
}

// LogoutMsg asks the root model to end the session.
type LogoutMsg struct{}

type Model struct {
	port    AccountPort
	profile accountdto.ProfileOutput
	err     error
	loaded  bool
	width   int
	height  int
}

func New(port AccountPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := m.port.GetProfile(context.Background())
		return LoadedMsg{Profile: p, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case LoadedMsg:
		m.loaded = true
		m.err = msg.Err
		m.profile = msg.Profile
	case tea.KeyMsg:
		switch msg.String() {
		case "L":
			return m, func() tea.Msg { return LogoutMsg{} }
		case "r":
			return m, m.Init()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	switch {
	case !m.loaded:
		sb.WriteString(theme.Muted.Render("Loading profile…"))
	case m.err != nil:
		sb.WriteString(theme.Error.Render("profile: " + m.err.Error()))
	default:
		p := m.profile
		sb.WriteString(theme.Title.Render(p.Name) + "  " + theme.Muted.Render(p.UserType) + "\n\n")
		sb.WriteString(theme.Muted.Render("email:    ") + p.Email + "\n")
		if p.Phone != "" {
			sb.WriteString(theme.Muted.Render("phone:    ") + p.Phone + "\n")
		}
		if p.Location != "" {
			sb.WriteString(theme.Muted.Render("location: ") + p.Location + "\n")
		}
		if len(p.Skills) > 0 {
			sb.WriteString(theme.Muted.Render("skills:   ") + strings.Join(p.Skills, ", ") + "\n")
		}
		if p.UserType == "worker" {
			avail := theme.Error.Render("unavailable")
			if p.Available {
				avail = theme.Good.Render("available")
			}
			sb.WriteString(theme.Muted.Render("status:   ") + avail + "\n")
			sb.WriteString(fmt.Sprintf("%s%.1f\n", theme.Muted.Render("rating:   "), p.Rating))
		}
		if p.Bio != "" {
			sb.WriteString("\n" + p.Bio + "\n")
		}
	}
	sb.WriteString("\n\n" + theme.Muted.Render("r: refresh  L: log out"))
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}
