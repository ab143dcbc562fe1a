package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/aqari/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/config"
)

type readyMsg struct{}

type model struct {
	app *app.App

	loading bool
	email   string
	spinner spinner.Model
	screen  view.View // nil on the menu
}

type menuEntry struct {
	key   string
	label string
	open  func(a *app.App) view.View
}

var menu = []menuEntry{
	{"1", "لوحة التحكم", func(a *app.App) view.View { return view.NewDashboardModel(a) }},
	{"2", "العقارات", func(a *app.App) view.View { return view.NewPropertiesModel(a) }},
	{"3", "المستأجرين", func(a *app.App) view.View { return view.NewTenantsModel(a) }},
	{"4", "المعاملات المالية", func(a *app.App) view.View { return view.NewTransactionsModel(a) }},
	{"5", "التذكيرات", func(a *app.App) view.View { return view.NewRemindersModel(a) }},
	{"6", "الملاحظات", func(a *app.App) view.View { return view.NewNotesModel(a) }},
	{"7", "الإعدادات", func(a *app.App) view.View { return view.NewSettingsModel(a.Preferences, a.Auth) }},
}

func initialModel(a *app.App) model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		app:     a,
		loading: true,
		spinner: s,
		screen:  view.NewLoginModel(a.Auth),
	}
}

func (m model) Init() tea.Cmd {
	ready := m.app.Ready()

	return tea.Batch(
		m.spinner.Tick,
		m.screen.Init(),
		view.WatchToasts(m.app.Notifications.Changes()),
		func() tea.Msg {
			<-ready
			return readyMsg{}
		},
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.screen == nil {
			return m.updateMenu(msg)
		}

	case readyMsg:
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd

		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

		if m.screen != nil {
			next, cmd := m.screen.Update(msg)
			m.screen = next.(view.View)
			cmds = append(cmds, cmd)
		}

		return m, tea.Batch(cmds...)

	case view.ToastsChangedMsg:
		watch := view.WatchToasts(m.app.Notifications.Changes())
		if m.screen == nil {
			return m, watch
		}

		next, cmd := m.screen.Update(msg)
		m.screen = next.(view.View)

		return m, tea.Batch(watch, cmd)

	case view.LoggedInMsg:
		m.email = msg.Email
		m.screen = nil

		return m, nil

	case view.LoggedOutMsg:
		m.email = ""
		m.screen = view.NewLoginModel(m.app.Auth)

		return m, m.screen.Init()

	case view.BackMsg:
		m.screen = nil
		return m, nil
	}

	if m.screen == nil {
		return m, nil
	}

	next, cmd := m.screen.Update(msg)
	m.screen = next.(view.View)

	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	for _, entry := range menu {
		if entry.key == msg.String() {
			m.screen = entry.open(m.app)
			return m, m.screen.Init()
		}
	}

	return m, nil
}

func (m model) View() string {
	var body, help string

	switch {
	case m.screen != nil:
		body = m.screen.View()
		help = m.screen.ShortHelp()
	case m.loading:
		body = lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " جارِ تحميل البيانات...")
	default:
		body = m.menuView()
		help = "q: quit"
	}

	toasts := view.RenderToasts(m.app.Notifications.List())

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(help),
		toasts,
	)
}

func (m model) menuView() string {
	s := "عقاري"
	if m.email != "" {
		s += "  " + lipgloss.NewStyle().Faint(true).Render(m.email)
	}

	s += "\n\n"
	for _, entry := range menu {
		s += fmt.Sprintf("%s. %s\n", entry.key, entry.label)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func main() {
	_ = godotenv.Load()

	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("aqari-debug.log", "debug")
		if err != nil {
			slog.Error("failed to open debug log", "error", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prefs, closePrefs, err := app.OpenPreferences(ctx, cfg)
	if err != nil {
		slog.Error("failed to open preferences", "backend", cfg.Preferences.Backend, "error", err)
		os.Exit(1)
	}
	defer closePrefs()

	set, err := app.Fixtures(cfg)
	if err != nil {
		slog.Error("failed to read fixtures", "path", cfg.Fixtures.Path, "error", err)
		os.Exit(1)
	}

	a := app.New(app.ConfigFrom(cfg), prefs)
	defer a.Close()

	view.SetLocale(cfg.CollationTag())

	if theme, err := a.Preferences.Theme(ctx); err == nil {
		view.ApplyTheme(theme)
	}

	go func() {
		if err := a.Load(ctx, set); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("failed to load fixtures", "error", err)
		}
	}()

	p := tea.NewProgram(initialModel(a))
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
