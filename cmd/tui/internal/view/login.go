package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aqari/internal/auth"
)

// LoggedInMsg is sent once a login or registration succeeds.
type LoggedInMsg struct {
	Email string
}

type loginState int

const (
	loginStateForm loginState = iota
	loginStateWaiting
)

type loginFields struct {
	name, email, password, confirm string
}

// LoginModel covers both the login and registration forms; ctrl+r switches
// between them.
type LoginModel struct {
	auth *auth.Service

	state    loginState
	register bool
	form     *huh.Form
	fields   *loginFields
	spinner  spinner.Model
	err      error
}

func NewLoginModel(svc *auth.Service) LoginModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(palette.Accent)

	m := LoginModel{auth: svc, spinner: s, fields: &loginFields{}}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) Title() string {
	if m.register {
		return "إنشاء حساب"
	}

	return "تسجيل الدخول"
}

func (m LoginModel) ShortHelp() string { return "ctrl+r: تبديل بين الدخول والتسجيل | ctrl+c: quit" }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(authResultMsg); ok {
		m.state = loginStateForm
		if res.err != nil {
			m.err = res.err
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoggedInMsg{Email: res.email} }
	}

	if m.state == loginStateWaiting {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+r" {
		m.register = !m.register
		m.err = nil
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = loginStateWaiting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.submitCmd())
}

func (m LoginModel) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().Key("email").Title("البريد الإلكتروني").Value(&m.fields.email),
		huh.NewInput().Key("password").Title("كلمة المرور").EchoMode(huh.EchoModePassword).Value(&m.fields.password),
	}

	if m.register {
		fields = append([]huh.Field{
			huh.NewInput().Key("name").Title("الاسم").Value(&m.fields.name),
		}, fields...)
		fields = append(fields,
			huh.NewInput().Key("confirmPassword").Title("تأكيد كلمة المرور").EchoMode(huh.EchoModePassword).Value(&m.fields.confirm),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...).Title(m.Title())).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) View() string {
	body := m.form.View()
	if m.state == loginStateWaiting {
		body = m.spinner.View() + " " + mutedStyle("...")
	}

	if m.err != nil {
		body = errorStyle(fmt.Sprintf("%v", m.err)) + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(2).Render(panel("عقاري", body))
}

type authResultMsg struct {
	email string
	err   error
}

func (m LoginModel) submitCmd() tea.Cmd {
	svc := m.auth
	f := *m.fields
	register := m.register

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		if register {
			err := svc.Register(ctx, auth.Registration{
				Name:            f.name,
				Email:           f.email,
				Password:        f.password,
				ConfirmPassword: f.confirm,
			})

			return authResultMsg{email: f.email, err: err}
		}

		session, err := svc.Login(ctx, f.email, f.password)

		return authResultMsg{email: session.Email, err: err}
	}
}
