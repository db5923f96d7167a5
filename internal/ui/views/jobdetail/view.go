package jobdetail

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	jobsdto "sabalabor/internal/modules/jobs/dto"
	"sabalabor/internal/ui/theme"
)

type JobsPort interface {
	Get(ctx context.Context, id int64) (jobsdto.JobOutput, error)
	Apply(ctx context.Context, id int64) (jobsdto.JobOutput, error)
	AcceptWorker(ctx context.Context, id, workerID int64) (jobsdto.JobOutput, error)
	Complete(ctx context.Context, id int64) (jobsdto.JobOutput, error)
	Delete(ctx context.Context, id int64) error
}

type LoadedMsg struct {
	Job jobsdto.JobOutput
	Err error
}

// ActionDoneMsg reports the outcome of apply, accept, complete or delete.
type ActionDoneMsg struct {
	Action  string
	Job     jobsdto.JobOutput
	Deleted bool
	Err     error
}

type BackMsg struct{}

type Model struct {
	port     JobsPort
	jobID    int64
	isWorker bool
	job      jobsdto.JobOutput
	err      error
	notice   string
	view     viewport.Model
	width    int
	height   int
}

func New(port JobsPort, jobID int64, isWorker bool) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Surface).Foreground(theme.Light).Padding(1)
	return Model{port: port, jobID: jobID, isWorker: isWorker, view: vp}
}

func (m Model) JobID() int64 { return m.jobID }

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.Width = max(msg.Width-2, 0)
		m.view.Height = max(msg.Height-2, 0)
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.job = msg.Job
		}
	case ActionDoneMsg:
		if msg.Err != nil {
			m.notice = theme.Error.Render(msg.Action + ": " + msg.Err.Error())
		} else if !msg.Deleted {
			m.job = msg.Job
			m.notice = theme.Good.Render(msg.Action + " ok")
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackMsg{} }
		case "a":
			if m.isWorker {
				return m, m.Apply()
			}
		case "c":
			return m, m.Complete()
		case "d":
			if !m.isWorker {
				return m, m.Delete()
			}
		}
	}
	m.view.SetContent(m.render())
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) Apply() tea.Cmd {
	return m.action("apply", func(ctx context.Context) (jobsdto.JobOutput, error) { return m.port.Apply(ctx, m.jobID) })
}

func (m Model) Complete() tea.Cmd {
	return m.action("complete", func(ctx context.Context) (jobsdto.JobOutput, error) { return m.port.Complete(ctx, m.jobID) })
}

func (m Model) Accept(workerID int64) tea.Cmd {
	return m.action("accept", func(ctx context.Context) (jobsdto.JobOutput, error) {
		return m.port.AcceptWorker(ctx, m.jobID, workerID)
	})
}

func (m Model) Delete() tea.Cmd {
	return func() tea.Msg {
		err := m.port.Delete(context.Background(), m.jobID)
		return ActionDoneMsg{Action: "delete", Deleted: err == nil, Err: err}
	}
}

func (m Model) action(name string, fn func(context.Context) (jobsdto.JobOutput, error)) tea.Cmd {
	return func() tea.Msg {
		job, err := fn(context.Background())
		return ActionDoneMsg{Action: name, Job: job, Err: err}
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		job, err := m.port.Get(context.Background(), m.jobID)
		return LoadedMsg{Job: job, Err: err}
	}
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(m.view.View())
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Error.Render(m.err.Error())
	}
	j := m.job
	if j.ID == 0 {
		return theme.Muted.Render("Loading job…")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(j.Title) + "  " + theme.StatusStyle(j.Status).Render(j.Status) + "\n\n")
	sb.WriteString(j.Description + "\n\n")
	sb.WriteString(theme.Muted.Render("type:     ") + j.JobType + "\n")
	sb.WriteString(theme.Muted.Render("location: ") + j.Location + "\n")
	sb.WriteString(fmt.Sprintf("%s%.2f\n", theme.Muted.Render("budget:   "), j.Budget))
	sb.WriteString(fmt.Sprintf("%s%.1f\n", theme.Muted.Render("hours:    "), j.EstimatedHours))
	if j.ScheduledDate != "" {
		sb.WriteString(theme.Muted.Render("date:     ") + j.ScheduledDate + "\n")
	}
	if j.WorkerID != 0 {
		sb.WriteString(fmt.Sprintf("%s#%d\n", theme.Muted.Render("worker:   "), j.WorkerID))
	}
	if !m.isWorker && len(j.Applicants) > 0 {
		ids := make([]string, len(j.Applicants))
		for i, id := range j.Applicants {
			ids[i] = fmt.Sprintf("#%d", id)
		}
		sb.WriteString(theme.Muted.Render("applied:  ") + strings.Join(ids, ", ") + "\n")
	}
	if m.notice != "" {
		sb.WriteString("\n" + m.notice + "\n")
	}
	help := "c: complete  :job:accept <id>  d: delete  esc: back"
	if m.isWorker {
		help = "a: apply  c: complete  esc: back"
	}
	sb.WriteString("\n" + theme.Muted.Render(help))
	return sb.String()
}
