package ui

import (
	"github.com/BerniceZTT/product_console/models"

	"github.com/charmbracelet/lipgloss"
)

// Theme 界面配色
type Theme struct {
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

var defaultTheme = Theme{
	Border:  lipgloss.Color("#4D4C57"),
	Muted:   lipgloss.Color("#858392"),
	Text:    lipgloss.Color("#DFDBDD"),
	Primary: lipgloss.Color("#6B50FF"),
	Success: lipgloss.Color("#00FFB2"),
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
	Info:    lipgloss.Color("#00CED1"),
}

func (t Theme) severity(s models.Severity) lipgloss.Color {
	switch s {
	case models.SeveritySuccess:
		return t.Success
	case models.SeverityError:
		return t.Error
	default:
		return t.Info
	}
}
