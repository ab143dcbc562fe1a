package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aqari/internal/auth"
	"github.com/MrJamesThe3rd/aqari/internal/preference"
)

// LoggedOutMsg is sent after the account is deleted.
type LoggedOutMsg struct{}

type settingsAction int

const (
	settingsNone settingsAction = iota
	settingsTheme
	settingsProfile
	settingsPassword
	settingsDelete
)

type settingsFields struct {
	theme                 string
	name                  string
	current, next, repeat string
	confirmation          string
}

type SettingsModel struct {
	prefs *preference.Service
	auth  *auth.Service

	action  settingsAction
	waiting bool
	form    *huh.Form
	fields  *settingsFields
	spinner spinner.Model
	theme   preference.Theme
	err     error
}

func NewSettingsModel(prefs *preference.Service, svc *auth.Service) SettingsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(palette.Accent)

	theme, err := prefs.Theme(context.Background())

	return SettingsModel{
		prefs:   prefs,
		auth:    svc,
		fields:  &settingsFields{},
		spinner: s,
		theme:   theme,
		err:     err,
	}
}

func (m SettingsModel) Title() string { return "الإعدادات" }

func (m SettingsModel) ShortHelp() string {
	if m.action != settingsNone {
		return "Esc: cancel"
	}

	return "Esc: back | 1: المظهر | 2: الملف الشخصي | 3: كلمة المرور | 4: حذف الحساب"
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(settingsResultMsg); ok {
		m.waiting = false
		m.err = res.err

		action := m.action
		m.action = settingsNone
		m.form = nil

		if res.err == nil {
			switch action {
			case settingsTheme:
				m.theme = preference.Theme(m.fields.theme)
				ApplyTheme(m.theme)
			case settingsDelete:
				return m, func() tea.Msg { return LoggedOutMsg{} }
			}
		}

		*m.fields = settingsFields{}

		return m, nil
	}

	if m.waiting {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	if m.action == settingsNone {
		keyMsg, ok := msg.(tea.KeyMsg)
		if !ok {
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "1":
			return m.open(settingsTheme)
		case "2":
			return m.open(settingsProfile)
		case "3":
			return m.open(settingsPassword)
		case "4":
			return m.open(settingsDelete)
		}

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.action = settingsNone
		m.form = nil

		return m, nil
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.waiting = true

	return m, tea.Batch(m.spinner.Tick, m.runCmd())
}

func (m SettingsModel) open(action settingsAction) (tea.Model, tea.Cmd) {
	m.action = action
	m.err = nil
	m.fields.theme = string(m.theme)

	var group *huh.Group

	switch action {
	case settingsTheme:
		group = huh.NewGroup(
			huh.NewSelect[string]().
				Title("المظهر").
				Options(
					huh.NewOption("فاتح", string(preference.ThemeLight)),
					huh.NewOption("داكن", string(preference.ThemeDark)),
					huh.NewOption("حسب النظام", string(preference.ThemeSystem)),
				).
				Value(&m.fields.theme),
		)
	case settingsProfile:
		group = huh.NewGroup(huh.NewInput().Title("الاسم").Value(&m.fields.name))
	case settingsPassword:
		group = huh.NewGroup(
			huh.NewInput().Title("كلمة المرور الحالية").EchoMode(huh.EchoModePassword).Value(&m.fields.current),
			huh.NewInput().Title("كلمة المرور الجديدة").EchoMode(huh.EchoModePassword).Value(&m.fields.next),
			huh.NewInput().Title("تأكيد كلمة المرور").EchoMode(huh.EchoModePassword).Value(&m.fields.repeat),
		)
	case settingsDelete:
		group = huh.NewGroup(
			huh.NewInput().
				Title("حذف الحساب").
				Description(fmt.Sprintf("اكتب \"%s\" للتأكيد", auth.DeleteConfirmation)).
				Value(&m.fields.confirmation),
		)
	}

	m.form = huh.NewForm(group).WithWidth(50).WithShowHelp(false)

	return m, m.form.Init()
}

func (m SettingsModel) View() string {
	var body string

	switch {
	case m.waiting:
		body = m.spinner.View() + " ..."
	case m.form != nil:
		body = m.form.View()
	default:
		body = fmt.Sprintf("المظهر الحالي: %s\n\n1. المظهر\n2. الملف الشخصي\n3. كلمة المرور\n4. حذف الحساب", activeStyle(string(m.theme)))
	}

	if m.err != nil {
		body = errorStyle(m.err.Error()) + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(1).Render(panel(m.Title(), body))
}

type settingsResultMsg struct {
	err error
}

func (m SettingsModel) runCmd() tea.Cmd {
	var (
		prefs  = m.prefs
		svc    = m.auth
		action = m.action
		f      = *m.fields
	)

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		var err error

		switch action {
		case settingsTheme:
			err = prefs.SetTheme(ctx, preference.Theme(f.theme))
		case settingsProfile:
			err = svc.UpdateProfile(ctx, f.name)
		case settingsPassword:
			err = svc.ChangePassword(ctx, f.current, f.next, f.repeat)
		case settingsDelete:
			err = svc.DeleteAccount(ctx, f.confirmation)
		}

		return settingsResultMsg{err: err}
	}
}
