package register

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "sabalabor/internal/modules/session/dto"
	"sabalabor/internal/platform/form"
	"sabalabor/internal/ui/components"
	"sabalabor/internal/ui/theme"
)

const formID = "register"

type SessionPort interface {
	Register(ctx context.Context, input sessiondto.RegisterInput, confirmPassword string) (sessiondto.SessionOutput, error)
}

type DoneMsg struct {
	Session sessiondto.SessionOutput
	Err     error
}

type BackMsg struct{}

type Model struct {
	port    SessionPort
	form    components.Form
	pending bool
	err     string
	width   int
	height  int
}

func New(port SessionPort) Model {
	return Model{
		port: port,
		form: components.NewForm(formID,
			components.FieldSpec{Name: "name", Label: "Full name"},
			components.FieldSpec{Name: "email", Label: "Email", Placeholder: "you@example.com"},
			components.FieldSpec{Name: "phone", Label: "Phone"},
			components.FieldSpec{Name: "password", Label: "Password", Secret: true},
			components.FieldSpec{Name: "confirmPassword", Label: "Confirm password", Secret: true},
			components.FieldSpec{Name: "userType", Label: "I am a", Placeholder: "client or worker", Value: "client"},
		),
	}
}

func (m Model) Init() tea.Cmd { return m.form.Focus() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.form.SetWidth(min(m.width-8, 60))
		return m, nil
	case components.FormSubmitMsg:
		if msg.ID != formID || m.pending {
			return m, nil
		}
		m.pending = true
		m.err = ""
		m.form.SetErrors(nil)
		return m, m.registerCmd(msg.Values)
	case components.FormCancelMsg:
		return m, func() tea.Msg { return BackMsg{} }
	case DoneMsg:
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

func (m Model) registerCmd(values form.Values) tea.Cmd {
	return func() tea.Msg {
		input := sessiondto.RegisterInput{
			Name:     values["name"],
			Email:    values["email"],
			Phone:    values["phone"],
			Password: values["password"],
			UserType: values["userType"],
		}
		out, err := m.port.Register(context.Background(), input, values["confirmPassword"])
		return DoneMsg{Session: out, Err: err}
	}
}

func (m Model) View() string {
	body := theme.Title.Render("Join ") + components.Logo() + "\n\n" + m.form.View()
	switch {
	case m.pending:
		body += "\n" + theme.Muted.Render("Creating your account…")
	case m.err != "":
		body += "\n" + theme.Error.Render(m.err)
	}
	body += "\n" + theme.Muted.Render("tab: next field  enter: submit on last field  esc: back")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(body))
}
