package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

// ToastsChangedMsg is sent whenever the notification queue changes.
type ToastsChangedMsg struct{}

// WatchToasts blocks until the queue changes. Re-issue it after each
// ToastsChangedMsg to keep listening.
func WatchToasts(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}

		return ToastsChangedMsg{}
	}
}

// RenderToasts stacks notifications oldest first. Expiring toasts are drawn
// faint while they animate out.
func RenderToasts(items []notify.Notification) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for _, n := range items {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(kindColor(n.Kind)).
			Foreground(kindColor(n.Kind))

		if n.State == notify.StateExpiring {
			style = style.Faint(true)
		}

		lines = append(lines, style.Render(n.Message))
	}

	return strings.Join(lines, "\n")
}
