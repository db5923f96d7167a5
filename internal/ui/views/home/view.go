package home

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	jobsdto "sabalabor/internal/modules/jobs/dto"
	navigationdomain "sabalabor/internal/modules/navigation/domain"
	notificationsdto "sabalabor/internal/modules/notifications/dto"
	sessiondto "sabalabor/internal/modules/session/dto"
	"sabalabor/internal/ui/components"
	"sabalabor/internal/ui/theme"
)

type JobsPort interface {
	ListAvailable(ctx context.Context) ([]jobsdto.JobOutput, error)
	List(ctx context.Context, status, jobType, location string) ([]jobsdto.JobOutput, error)
}

type NotificationsPort interface {
	List(ctx context.Context) (notificationsdto.ListOutput, error)
}

type SummaryMsg struct {
	Jobs   []jobsdto.JobOutput
	Unread int
	Err    error
}

// ActionMsg is the primary action of the home variant.
type ActionMsg struct{ Variant navigationdomain.HomeVariant }

type Model struct {
	jobs    JobsPort
	notes   NotificationsPort
	user    sessiondto.UserOutput
	variant navigationdomain.HomeVariant
	summary SummaryMsg
	loaded  bool
	width   int
	height  int
}

func New(jobs JobsPort, notes NotificationsPort, user sessiondto.UserOutput) Model {
	return Model{
		jobs:    jobs,
		notes:   notes,
		user:    user,
		variant: navigationdomain.HomeFor(user.UserType),
	}
}

func (m Model) Variant() navigationdomain.HomeVariant { return m.variant }

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case SummaryMsg:
		m.summary = msg
		m.loaded = true
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "n":
			variant := m.variant
			return m, func() tea.Msg { return ActionMsg{Variant: variant} }
		case "r":
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			jobs []jobsdto.JobOutput
			err  error
		)
		if m.variant == navigationdomain.HomeAvailableJobs {
			jobs, err = m.jobs.ListAvailable(ctx)
		} else {
			jobs, err = m.jobs.List(ctx, "", "", "")
		}
		out := SummaryMsg{Jobs: jobs, Err: err}
		if m.notes != nil {
			if notes, nerr := m.notes.List(ctx); nerr == nil {
				out.Unread = notes.Unread
			}
		}
		return out
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(components.Logo() + "\n\n")
	sb.WriteString(theme.Title.Render("Welcome back, "+m.user.Name) + "\n")
	sb.WriteString(theme.Muted.Render(m.user.UserType+" account") + "\n\n")

	switch {
	case !m.loaded:
		sb.WriteString(theme.Muted.Render("Loading…") + "\n")
	case m.summary.Err != nil:
		sb.WriteString(theme.Error.Render(m.summary.Err.Error()) + "\n")
	case m.variant == navigationdomain.HomeAvailableJobs:
		sb.WriteString(fmt.Sprintf("%s open jobs near you\n", theme.Hot.Render(fmt.Sprint(len(m.summary.Jobs)))))
		for _, j := range head(m.summary.Jobs, 5) {
			sb.WriteString(fmt.Sprintf("  • %s  %s  %.0f\n", j.Title, theme.Muted.Render(j.Location), j.Budget))
		}
		sb.WriteString("\n" + theme.Muted.Render("enter: browse available jobs"))
	default:
		sb.WriteString(fmt.Sprintf("%s jobs posted\n", theme.Hot.Render(fmt.Sprint(len(m.summary.Jobs)))))
		for _, j := range head(m.summary.Jobs, 5) {
			sb.WriteString(fmt.Sprintf("  • %s  %s\n", j.Title, theme.StatusStyle(j.Status).Render(j.Status)))
		}
		sb.WriteString("\n" + theme.Muted.Render("n: post a job"))
	}
	if m.summary.Unread > 0 {
		sb.WriteString("\n" + theme.Hot.Render(fmt.Sprintf("%d unread notifications", m.summary.Unread)))
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}

func head(jobs []jobsdto.JobOutput, n int) []jobsdto.JobOutput {
	if len(jobs) > n {
		return jobs[:n]
	}
	return jobs
}
