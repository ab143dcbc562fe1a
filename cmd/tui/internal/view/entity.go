package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

type entityState int

const (
	entityStateBrowse entityState = iota
	entityStateSearch
	entityStateEdit
	entityStateSaving
	entityStateConfirm
	entityStateDetail
)

// Source is the slice of a collection controller the list screen needs.
type Source[T any] interface {
	List(ctx context.Context) []T
	Remove(ctx context.Context, id int64) (bool, error)
}

type Column[T any] struct {
	Title string
	Width int
	Value func(T) string
}

type EntityConfig[T collection.Entity[T]] struct {
	Title   string
	Noun    string
	Source  Source[T]
	View    listing.View[T]
	Columns []Column[T]

	// Open enables add and edit. A nil record opens a create form.
	Open func(record *T) *form.Form[T]

	// RemoveKey defaults to "d".
	RemoveKey   string
	RemoveLabel string
	// Confirm asks before removing.
	Confirm bool

	Detail func(T) string
}

// EntityModel browses one collection in a table with search, sort cycling
// and schema-driven forms.
type EntityModel[T collection.Entity[T]] struct {
	cfg EntityConfig[T]

	state   entityState
	table   table.Model
	search  textinput.Model
	spinner spinner.Model
	items   []T
	query   string
	spec    listing.Spec
	status  string

	form    *huh.Form
	draft   *form.Form[T]
	values  []string
	confirm *bool
}

func NewEntityModel[T collection.Entity[T]](cfg EntityConfig[T]) EntityModel[T] {
	if cfg.RemoveKey == "" {
		cfg.RemoveKey = "d"
	}

	if cfg.RemoveLabel == "" {
		cfg.RemoveLabel = "حذف"
	}

	columns := make([]table.Column, len(cfg.Columns))
	for i, c := range cfg.Columns {
		columns[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "بحث..."
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(palette.Accent)

	m := EntityModel[T]{
		cfg:     cfg,
		table:   t,
		search:  search,
		spinner: sp,
		spec:    cfg.View.Default,
	}
	m.refresh()

	return m
}

func (m EntityModel[T]) Title() string { return m.cfg.Title }

func (m EntityModel[T]) ShortHelp() string {
	switch m.state {
	case entityStateSearch:
		return "Enter: apply | Esc: clear"
	case entityStateEdit:
		return "Navigate form | Esc: cancel"
	case entityStateSaving:
		return "جارِ الحفظ..."
	case entityStateConfirm:
		return "y/n"
	case entityStateDetail:
		return "Any key: close"
	}

	help := []string{"Esc: back", "/: search", "s: sort key", "r: reverse"}
	if m.cfg.Open != nil {
		help = append(help, "a: add", "e: edit")
	}

	help = append(help, m.cfg.RemoveKey+": "+m.cfg.RemoveLabel)

	if m.cfg.Detail != nil {
		help = append(help, "v: view")
	}

	return strings.Join(help, " | ")
}

func (m EntityModel[T]) Init() tea.Cmd {
	return nil
}

// Items returns the rows currently shown, after search and sort.
func (m EntityModel[T]) Items() []T { return m.items }

func (m EntityModel[T]) Spec() listing.Spec { return m.spec }

func (m EntityModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entitySavedMsg:
		m.state = entityStateBrowse
		m.draft = nil
		m.form = nil
		m.status = ""

		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
		}

		m.refresh()
		m.table.Focus()

		return m, nil

	case entityRemovedMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
		}

		m.refresh()

		return m, nil

	case ToastsChangedMsg:
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(5, msg.Height-14))
		return m, nil
	}

	switch m.state {
	case entityStateSearch:
		return m.updateSearch(msg)
	case entityStateEdit:
		return m.updateEdit(msg)
	case entityStateSaving:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case entityStateConfirm:
		return m.updateConfirm(msg)
	case entityStateDetail:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.state = entityStateBrowse
		}

		return m, nil
	}

	return m.updateBrowse(msg)
}

func (m EntityModel[T]) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "/":
			m.state = entityStateSearch
			m.table.Blur()

			return m, m.search.Focus()
		case "s":
			m.spec = m.nextKey()
			m.refresh()

			return m, nil
		case "r":
			m.spec = m.spec.Toggle(m.spec.Key)
			m.refresh()

			return m, nil
		case "a":
			if m.cfg.Open == nil {
				return m, nil
			}

			return m.openForm(nil)
		case "e":
			if m.cfg.Open == nil {
				return m, nil
			}

			if rec, ok := m.selected(); ok {
				return m.openForm(&rec)
			}

			return m, nil
		case "v", "enter":
			if _, ok := m.selected(); ok && m.cfg.Detail != nil {
				m.state = entityStateDetail
			}

			return m, nil
		case m.cfg.RemoveKey:
			return m.startRemove()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EntityModel[T]) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.search.SetValue("")
			m.query = ""
			m.leaveSearch()

			return m, nil
		case tea.KeyEnter:
			m.leaveSearch()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query = m.search.Value()
	m.refresh()

	return m, cmd
}

func (m *EntityModel[T]) leaveSearch() {
	m.search.Blur()
	m.state = entityStateBrowse
	m.table.Focus()
	m.refresh()
}

func (m EntityModel[T]) openForm(record *T) (tea.Model, tea.Cmd) {
	m.draft = m.cfg.Open(record)

	fields := m.draft.Schema().Fields
	draft := m.draft.Draft()

	m.values = make([]string, len(fields))
	for i, f := range fields {
		m.values[i] = f.Get(draft)
	}

	m.form = m.buildForm()
	m.state = entityStateEdit
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m EntityModel[T]) buildForm() *huh.Form {
	title := "إضافة " + m.cfg.Noun
	if m.draft.Op() == form.OpUpdate {
		title = "تعديل " + m.cfg.Noun
	}

	schemaFields := m.draft.Schema().Fields
	fields := make([]huh.Field, 0, len(schemaFields))

	for i, f := range schemaFields {
		if f.Kind == form.KindChoice {
			fields = append(fields, huh.NewSelect[string]().
				Key(f.Name).
				Title(f.Label).
				Options(huh.NewOptions(f.Choices...)...).
				Value(&m.values[i]))

			continue
		}

		input := huh.NewInput().
			Key(f.Name).
			Title(f.Label).
			Value(&m.values[i])

		switch f.Kind {
		case form.KindDate:
			input = input.Placeholder("YYYY-MM-DD")
		case form.KindInt, form.KindDecimal:
			input = input.Placeholder("0")
		}

		if f.Required {
			input = input.Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("هذا الحقل مطلوب")
				}

				return nil
			})
		}

		fields = append(fields, input)
	}

	return huh.NewForm(huh.NewGroup(fields...).Title(title)).WithWidth(50).WithShowHelp(false)
}

func (m EntityModel[T]) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.cancelEdit(), nil
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	switch m.form.State {
	case huh.StateAborted:
		return m.cancelEdit(), nil
	case huh.StateCompleted:
		return m.submit()
	}

	return m, cmd
}

func (m EntityModel[T]) cancelEdit() EntityModel[T] {
	m.draft.Close()
	m.draft = nil
	m.form = nil
	m.state = entityStateBrowse
	m.table.Focus()

	return m
}

// submit copies the huh values into the draft and dispatches the save. A
// rejected draft reopens the form with the entered values intact.
func (m EntityModel[T]) submit() (tea.Model, tea.Cmd) {
	for i, f := range m.draft.Schema().Fields {
		if err := m.draft.SetField(f.Name, m.values[i]); err != nil {
			return m.reject(err)
		}
	}

	pending, err := m.draft.Submit(context.Background())
	if err != nil {
		return m.reject(err)
	}

	m.state = entityStateSaving

	return m, tea.Batch(m.spinner.Tick, waitSaved(pending))
}

func (m EntityModel[T]) reject(err error) (tea.Model, tea.Cmd) {
	m.status = errorStyle(err.Error())
	m.form = m.buildForm()

	return m, m.form.Init()
}

func (m EntityModel[T]) startRemove() (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	if !ok {
		return m, nil
	}

	if !m.cfg.Confirm {
		return m, m.removeCmd(rec.Key())
	}

	m.confirm = new(bool)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s %s؟", m.cfg.RemoveLabel, m.cfg.Noun)).
				Affirmative("نعم").
				Negative("لا").
				Value(m.confirm),
		),
	).WithWidth(45).WithShowHelp(false)
	m.state = entityStateConfirm
	m.table.Blur()

	return m, m.form.Init()
}

func (m EntityModel[T]) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc, keyMsg.String() == "n":
			m.form = nil
			m.state = entityStateBrowse
			m.table.Focus()

			return m, nil
		case keyMsg.String() == "y":
			*m.confirm = true
			return m.closeConfirm()
		}
	}

	f, cmd := m.form.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		m.form = hf
	}

	if m.form.State == huh.StateNormal {
		return m, cmd
	}

	return m.closeConfirm()
}

// closeConfirm leaves the dialog and removes the selected row if accepted.
func (m EntityModel[T]) closeConfirm() (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	m.form = nil
	m.state = entityStateBrowse
	m.table.Focus()

	if ok && *m.confirm {
		return m, m.removeCmd(rec.Key())
	}

	return m, nil
}

func (m EntityModel[T]) View() string {
	header := fmt.Sprintf("%s  [s] ترتيب: %s", m.search.View(), activeStyle(m.spec.String()))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.Border).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		mutedStyle(fmt.Sprintf("%s / %s", FormatCount(len(m.items)), FormatCount(len(m.cfg.Source.List(context.Background()))))),
	)

	switch m.state {
	case entityStateEdit, entityStateConfirm:
		if m.form != nil {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", m.form.View())
		}
	case entityStateSaving:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", m.spinner.View()+" جارِ الحفظ...")
	case entityStateDetail:
		if rec, ok := m.selected(); ok {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", panel(m.cfg.Noun, m.cfg.Detail(rec)))
		}
	}

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m EntityModel[T]) selected() (T, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		var zero T
		return zero, false
	}

	return m.items[idx], true
}

// nextKey advances to the following sort key, keeping the direction.
func (m EntityModel[T]) nextKey() listing.Spec {
	names := m.cfg.View.KeyNames()
	if len(names) == 0 {
		return m.spec
	}

	next := (slices.Index(names, m.spec.Key) + 1) % len(names)

	return listing.Spec{Key: names[next], Direction: m.spec.Direction}
}

func (m *EntityModel[T]) refresh() {
	m.items = m.cfg.View.Apply(m.cfg.Source.List(context.Background()), m.query, m.spec)

	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		row := make(table.Row, len(m.cfg.Columns))
		for i, c := range m.cfg.Columns {
			row[i] = c.Value(item)
		}

		rows = append(rows, row)
	}

	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Messages

type entitySavedMsg struct {
	err error
}

func waitSaved[T any](pending *form.Pending[T]) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := pending.Wait(ctx)

		return entitySavedMsg{err: err}
	}
}

type entityRemovedMsg struct {
	err error
}

func (m EntityModel[T]) removeCmd(id int64) tea.Cmd {
	src := m.cfg.Source

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := src.Remove(ctx, id)

		return entityRemovedMsg{err: err}
	}
}
