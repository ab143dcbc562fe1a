package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const opTimeout = 10 * time.Second

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// OpCtx bounds a single call into the App, including simulated latency.
func OpCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
