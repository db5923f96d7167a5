package jobs

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	jobsdto "sabalabor/internal/modules/jobs/dto"
	"sabalabor/internal/ui/theme"
)

type JobsPort interface {
	ListAvailable(ctx context.Context) ([]jobsdto.JobOutput, error)
	List(ctx context.Context, status, jobType, location string) ([]jobsdto.JobOutput, error)
}

type LoadedMsg struct {
	Jobs []jobsdto.JobOutput
	Err  error
}

// OpenMsg asks the root model to push the detail screen.
type OpenMsg struct{ JobID int64 }

type jobItem struct {
	job jobsdto.JobOutput
}

func (i jobItem) Title() string { return i.job.Title }
func (i jobItem) Description() string {
	return fmt.Sprintf("%s · %s · %.0f · %s", i.job.JobType, i.job.Location, i.job.Budget, i.job.Status)
}
func (i jobItem) FilterValue() string { return i.job.Title + " " + i.job.JobType + " " + i.job.Location }

type Model struct {
	port      JobsPort
	available bool
	list      list.Model
	spinner   spinner.Model
	loading   bool
	err       error
}

// New builds the jobs list. available selects the open-jobs feed used by
// workers; otherwise the view lists every job the server returns.
func New(port JobsPort, available bool) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Primary).BorderForeground(theme.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Secondary).BorderForeground(theme.Primary)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "My jobs"
	if available {
		l.Title = "Available jobs"
	}
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{port: port, available: available, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if m.available {
			jobs, err := m.port.ListAvailable(ctx)
			return LoadedMsg{Jobs: jobs, Err: err}
		}
		jobs, err := m.port.List(ctx, "", "", "")
		return LoadedMsg{Jobs: jobs, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Jobs))
		for i, j := range msg.Jobs {
			items[i] = jobItem{job: j}
		}
		cmds = append(cmds, m.list.SetItems(items))
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if id, ok := m.SelectedJobID(); ok {
				return m, func() tea.Msg { return OpenMsg{JobID: id} }
			}
		case "r":
			m.loading = true
			return m, tea.Batch(m.Reload(), m.spinner.Tick)
		}
	}
	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	switch {
	case m.loading:
		return m.spinner.View() + " Loading jobs…"
	case m.err != nil:
		return theme.Error.Render("jobs: "+m.err.Error()) + "\n" + theme.Muted.Render("r: retry")
	}
	return m.list.View()
}

func (m Model) SelectedJobID() (int64, bool) {
	if item, ok := m.list.SelectedItem().(jobItem); ok {
		return item.job.ID, true
	}
	return 0, false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
