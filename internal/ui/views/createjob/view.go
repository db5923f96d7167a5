package createjob

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	jobsdto "sabalabor/internal/modules/jobs/dto"
	"sabalabor/internal/platform/form"
	"sabalabor/internal/ui/components"
	"sabalabor/internal/ui/theme"
)

const formID = "create-job"

type JobsPort interface {
	Create(ctx context.Context, values form.Values) (jobsdto.JobOutput, error)
}

type CreatedMsg struct {
	Job jobsdto.JobOutput
	Err error
}

type BackMsg struct{}

type Model struct {
	port    JobsPort
	form    components.Form
	pending bool
	err     string
}

func New(port JobsPort) Model {
	return Model{
		port: port,
		form: components.NewForm(formID,
			components.FieldSpec{Name: "title", Label: "Title"},
			components.FieldSpec{Name: "description", Label: "Description"},
			components.FieldSpec{Name: "job_type", Label: "Job type", Placeholder: "plumbing, cleaning, electrical…"},
			components.FieldSpec{Name: "location", Label: "Location"},
			components.FieldSpec{Name: "budget", Label: "Budget", Placeholder: "5000"},
			components.FieldSpec{Name: "estimated_hours", Label: "Estimated hours", Placeholder: "2"},
			components.FieldSpec{Name: "scheduled_date", Label: "Scheduled date (optional)", Placeholder: "2026-11-01"},
		),
	}
}

func (m Model) Init() tea.Cmd { return m.form.Focus() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.form.SetWidth(min(msg.Width-4, 70))
		return m, nil
	case components.FormSubmitMsg:
		if msg.ID != formID || m.pending {
			return m, nil
		}
		m.pending = true
		m.err = ""
		m.form.SetErrors(nil)
		values := msg.Values
		return m, func() tea.Msg {
			job, err := m.port.Create(context.Background(), values)
			return CreatedMsg{Job: job, Err: err}
		}
	case components.FormCancelMsg:
		return m, func() tea.Msg { return BackMsg{} }
	case CreatedMsg:
		m.pending = false
		if msg.Err != nil {
			fieldErrs := form.Errors{}
			if errors.As(msg.Err, &fieldErrs) {
				m.form.SetErrors(fieldErrs)
			} else {
				m.err = msg.Err.Error()
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	body := theme.Title.Render("Post a job") + "\n\n" + m.form.View()
	if m.pending {
		body += "\n" + theme.Muted.Render("Posting…")
	} else if m.err != "" {
		body += "\n" + theme.Error.Render(m.err)
	}
	return body + "\n" + theme.Muted.Render("enter on last field: post  esc: cancel")
}
