package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sabalabor/internal/platform/form"
	"sabalabor/internal/ui/theme"
)

// FormSubmitMsg is emitted when enter is pressed on the last field.
type FormSubmitMsg struct {
	ID     string
	Values form.Values
}

// FormCancelMsg is emitted when the user presses esc.
type FormCancelMsg struct{ ID string }

type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Secret      bool
	Value       string
}

// Form is a vertical stack of text inputs with inline field errors.
type Form struct {
	id     string
	specs  []FieldSpec
	inputs []textinput.Model
	focus  int
	errs   form.Errors
	width  int
}

func NewForm(id string, specs ...FieldSpec) Form {
	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.CharLimit = 256
		ti.SetValue(spec.Value)
		if spec.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	f := Form{id: id, specs: specs, inputs: inputs}
	if len(inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f Form) ID() string { return f.id }

func (f Form) Values() form.Values {
	out := form.Values{}
	for i, spec := range f.specs {
		out[spec.Name] = strings.TrimSpace(f.inputs[i].Value())
		if spec.Secret {
			out[spec.Name] = f.inputs[i].Value()
		}
	}
	return out
}

func (f *Form) SetValue(name, value string) {
	for i, spec := range f.specs {
		if spec.Name == name {
			f.inputs[i].SetValue(value)
		}
	}
}

// SetErrors replaces the inline errors. A nil value clears them.
func (f *Form) SetErrors(errs form.Errors) { f.errs = errs }

func (f *Form) SetWidth(w int) {
	f.width = w
	for i := range f.inputs {
		f.inputs[i].Width = max(w-4, 10)
	}
}

// Focus returns the blink command for the focused input.
func (f *Form) Focus() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			id := f.id
			return f, func() tea.Msg { return FormCancelMsg{ID: id} }
		case "tab", "down":
			return f, f.move(1)
		case "shift+tab", "up":
			return f, f.move(-1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f, f.move(1)
			}
			id, values := f.id, f.Values()
			return f, func() tea.Msg { return FormSubmitMsg{ID: id, Values: values} }
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *Form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f Form) View() string {
	var sb strings.Builder
	for i, spec := range f.specs {
		label := theme.Muted.Render(spec.Label)
		if i == f.focus {
			label = theme.Title.Render(spec.Label)
		}
		sb.WriteString(label + "\n")
		sb.WriteString(inputStyle(i == f.focus).Render(f.inputs[i].View()) + "\n")
		if msg, ok := f.errs[spec.Name]; ok {
			sb.WriteString(theme.Error.Render("  "+msg) + "\n")
		}
	}
	return sb.String()
}

func inputStyle(focused bool) lipgloss.Style {
	border := theme.Border
	if focused {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
