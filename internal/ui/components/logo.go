package components

import (
	"github.com/charmbracelet/lipgloss"

	"sabalabor/internal/ui/theme"
)

var (
	sabaStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	laborStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
)

func Logo() string {
	return sabaStyle.Render("Saba") + laborStyle.Render("Labor")
}
