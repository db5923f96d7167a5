package login

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "sabalabor/internal/modules/session/dto"
	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/form"
	"sabalabor/internal/ui/components"
	"sabalabor/internal/ui/theme"
)

const formID = "login"

type SessionPort interface {
	Login(ctx context.Context, email, password string) (sessiondto.SessionOutput, error)
}

// DoneMsg carries the login result. On success the tree flip arrives
// separately through the navigation selector.
type DoneMsg struct {
	Session sessiondto.SessionOutput
	Err     error
}

// BackMsg asks the root model to pop back to the welcome screen.
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
	return Model{port: port, form: newForm()}
}

func newForm() components.Form {
	return components.NewForm(formID,
		components.FieldSpec{Name: "email", Label: "Email", Placeholder: "you@example.com"},
		components.FieldSpec{Name: "password", Label: "Password", Secret: true},
	)
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
		return m, m.loginCmd(msg.Values)
	case components.FormCancelMsg:
		return m, func() tea.Msg { return BackMsg{} }
	case DoneMsg:
		m.pending = false
		if msg.Err != nil {
			fieldErrs := form.Errors{}
			switch {
			case errors.As(msg.Err, &fieldErrs):
				m.form.SetErrors(fieldErrs)
			case errors.Is(msg.Err, apperrors.ErrInvalidCredentials):
				m.err = "Invalid email or password"
			default:
				m.err = msg.Err.Error()
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) loginCmd(values form.Values) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Login(context.Background(), values["email"], values["password"])
		return DoneMsg{Session: out, Err: err}
	}
}

func (m Model) View() string {
	body := theme.Title.Render("Log in to ") + components.Logo() + "\n\n" + m.form.View()
	switch {
	case m.pending:
		body += "\n" + theme.Muted.Render("Signing in…")
	case m.err != "":
		body += "\n" + theme.Error.Render(m.err)
	}
	body += "\n" + theme.Muted.Render("enter: next/submit  esc: back")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(body))
}
