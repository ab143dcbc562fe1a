package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aqari/internal/notify"
	"github.com/MrJamesThe3rd/aqari/internal/preference"
)

// Palette holds the colors that change between light and dark themes.
type Palette struct {
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Info    lipgloss.Color
	Error   lipgloss.Color
}

var (
	darkPalette = Palette{
		Accent:  lipgloss.Color("205"),
		Muted:   lipgloss.Color("245"),
		Border:  lipgloss.Color("240"),
		Success: lipgloss.Color("46"),
		Info:    lipgloss.Color("39"),
		Error:   lipgloss.Color("196"),
	}
	lightPalette = Palette{
		Accent:  lipgloss.Color("125"),
		Muted:   lipgloss.Color("241"),
		Border:  lipgloss.Color("250"),
		Success: lipgloss.Color("28"),
		Info:    lipgloss.Color("25"),
		Error:   lipgloss.Color("160"),
	}
)

var palette = darkPalette

// ApplyTheme resolves theme against the terminal background and switches the
// active palette.
func ApplyTheme(theme preference.Theme) {
	if preference.Resolve(theme, lipgloss.HasDarkBackground()) == preference.ThemeLight {
		palette = lightPalette
		return
	}

	palette = darkPalette
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(palette.Accent).Render(s)
}

func mutedStyle(s string) string {
	return lipgloss.NewStyle().Foreground(palette.Muted).Render(s)
}

func errorStyle(s string) string {
	return lipgloss.NewStyle().Foreground(palette.Error).Render(s)
}

func kindColor(kind notify.Kind) lipgloss.Color {
	switch kind {
	case notify.KindSuccess:
		return palette.Success
	case notify.KindError:
		return palette.Error
	default:
		return palette.Info
	}
}

func panel(title, body string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Accent).
		Render(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n" + body)
}
