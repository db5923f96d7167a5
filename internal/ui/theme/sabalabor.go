package theme

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.Color("#E69F17")
	Secondary = lipgloss.Color("#008751")
	Tertiary  = lipgloss.Color("#DC143C")
	Dark      = lipgloss.Color("#121212")
	Light     = lipgloss.Color("#F5F5F5")
	Gray      = lipgloss.Color("#808080")
	Success   = lipgloss.Color("#28a745")
	Warning   = lipgloss.Color("#ffc107")
	Danger    = lipgloss.Color("#dc3545")
	Info      = lipgloss.Color("#17a2b8")

	Surface = lipgloss.Color("#1e1e1e")
	Border  = lipgloss.Color("#3a3a3a")

	App = lipgloss.NewStyle().
		Background(Dark).
		Foreground(Light).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Background(Surface).
		Foreground(Light).
		Padding(1)

	PaneActive = Pane.BorderForeground(Primary)

	Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Gray)
	Hot   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Danger)
	Good  = lipgloss.NewStyle().Foreground(Success)
)

// StatusStyle colors a job or payment status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "available", "pending":
		return lipgloss.NewStyle().Foreground(Info)
	case "assigned", "in_progress":
		return lipgloss.NewStyle().Foreground(Warning)
	case "completed":
		return Good
	case "failed":
		return Error
	}
	return Muted
}
