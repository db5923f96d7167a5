package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sabalabor/internal/ui/theme"
)

// PaletteSubmitMsg carries the confirmed command split into name and args.
type PaletteSubmitMsg struct {
	Command string
	Args    []string
}

type PaletteCancelMsg struct{}

// PaletteCommand is one entry offered by the palette. An empty Role means
// the command is offered to every user type.
type PaletteCommand struct {
	Name string
	Args string
	Help string
	Role string
}

// PaletteCommands must stay in sync with executePalette in app/model.go.
var PaletteCommands = []PaletteCommand{
	{Name: "home", Help: "go to the home tab"},
	{Name: "jobs", Help: "go to the jobs tab"},
	{Name: "profile", Help: "go to the profile tab"},
	{Name: "jobs:refresh", Help: "reload the job list"},
	{Name: "job:new", Help: "post a job", Role: "client"},
	{Name: "job:apply", Help: "apply to the selected job", Role: "worker"},
	{Name: "job:accept", Args: "<worker-id>", Help: "hire an applicant", Role: "client"},
	{Name: "job:complete", Help: "mark the selected job done"},
	{Name: "job:delete", Help: "delete the selected job", Role: "client"},
	{Name: "logout", Help: "end the session on this device"},
	{Name: "logout:remote", Help: "also end it on the server"},
}

const paletteMatches = 6

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Background(theme.Surface).
			Foreground(theme.Light).
			Padding(0, 1)

	commandStyle = lipgloss.NewStyle().Foreground(theme.Light).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(theme.Gray)
)

type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	role    string
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "command"
	ti.CharLimit = 128
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// SetRole limits the offered commands to those meant for role.
func (p *Palette) SetRole(role string) { p.role = role }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// Matches returns the commands available to the current role whose name
// contains the typed command word.
func (p Palette) Matches() []PaletteCommand {
	word := ""
	if fields := strings.Fields(strings.ToLower(p.input.Value())); len(fields) > 0 {
		word = fields[0]
	}
	var out []PaletteCommand
	for _, c := range PaletteCommands {
		if c.Role != "" && p.role != "" && c.Role != p.role {
			continue
		}
		if word == "" || strings.Contains(c.Name, word) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			fields := strings.Fields(p.input.Value())
			p.close()
			if len(fields) == 0 {
				return p, func() tea.Msg { return PaletteCancelMsg{} }
			}
			submit := PaletteSubmitMsg{Command: strings.ToLower(fields[0]), Args: fields[1:]}
			return p, func() tea.Msg { return submit }
		case "tab":
			// Complete to the first match, keeping typed args.
			if matches := p.Matches(); len(matches) > 0 {
				fields := strings.Fields(p.input.Value())
				rest := ""
				if len(fields) > 1 {
					rest = " " + strings.Join(fields[1:], " ")
				}
				p.input.SetValue(matches[0].Name + rest)
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Commands") + "\n")
	sb.WriteString(": " + p.input.View() + "\n\n")

	matches := p.Matches()
	if len(matches) == 0 {
		sb.WriteString(helpStyle.Render("  no matching command") + "\n")
	}
	for i, c := range matches {
		if i == paletteMatches {
			break
		}
		name := c.Name
		if c.Args != "" {
			name += " " + c.Args
		}
		sb.WriteString("  " + commandStyle.Render(name) + "  " + helpStyle.Render(c.Help) + "\n")
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
