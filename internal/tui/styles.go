package tui

import (
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	toastBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	fadingStyle     = lipgloss.NewStyle().Faint(true)
)

var toastColors = map[models.ToastKind]lipgloss.Color{
	models.ToastSuccess: lipgloss.Color("42"),
	models.ToastError:   lipgloss.Color("196"),
	models.ToastWarning: lipgloss.Color("214"),
}

func toastStyle(kind models.ToastKind) lipgloss.Style {
	c, ok := toastColors[kind]
	if !ok {
		c = toastColors[models.ToastSuccess]
	}
	return toastBoxStyle.BorderForeground(c).Foreground(c)
}
