package view_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/aqari/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/fixture"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/preference/store"
	"github.com/MrJamesThe3rd/aqari/internal/property"
)

func loadedApp(t *testing.T) *app.App {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.LoadDelay = time.Millisecond
	cfg.SaveLatency = time.Millisecond

	a := app.New(cfg, store.NewMemory())
	t.Cleanup(a.Close)

	set, err := fixture.Default()
	require.NoError(t, err)
	require.NoError(t, a.Load(context.Background(), set))

	return a
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(M)
	require.True(t, ok)

	return out, cmd
}

func TestEntityModel_SortKeys(t *testing.T) {
	a := loadedApp(t)
	m := view.NewPropertiesModel(a)

	assert.Equal(t, "name-asc", m.Spec().String())

	m, _ = press(t, m, key("r"))
	assert.Equal(t, "name-desc", m.Spec().String())

	m, _ = press(t, m, key("s"))
	assert.Equal(t, "units-desc", m.Spec().String())

	items := m.Items()
	require.Len(t, items, 3)

	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].UnitCount, items[i].UnitCount)
	}
}

func TestEntityModel_Search(t *testing.T) {
	a := loadedApp(t)
	m := view.NewPropertiesModel(a)

	m, _ = press(t, m, key("/"))
	m, _ = press(t, m, key("جدة"))

	require.Len(t, m.Items(), 1)
	assert.Equal(t, int64(2), m.Items()[0].ID)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, m.Items(), 1)

	m, _ = press(t, m, key("/"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.Items(), 3)
}

func TestEntityModel_RemoveNoteAfterConfirm(t *testing.T) {
	a := loadedApp(t)
	m := view.NewNotesModel(a)
	require.Len(t, m.Items(), 5)

	m, _ = press(t, m, key("d"))
	assert.Equal(t, "y/n", m.ShortHelp())
	assert.Len(t, a.Notes.List(context.Background()), 5)

	m, _ = press(t, m, key("n"))
	assert.Len(t, a.Notes.List(context.Background()), 5)

	m, _ = press(t, m, key("d"))
	m, cmd := press(t, m, key("y"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Len(t, m.Items(), 4)
	assert.Len(t, a.Notes.List(context.Background()), 4)
}

func TestEntityModel_RemoveAsksFirst(t *testing.T) {
	a := loadedApp(t)
	m := view.NewPropertiesModel(a)

	m, _ = press(t, m, key("d"))
	assert.Len(t, a.Properties.List(context.Background()), 3)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.Items(), 3)
	assert.Contains(t, m.ShortHelp(), "a: add")
}

func TestEntityModel_MarkPaid(t *testing.T) {
	a := loadedApp(t)
	m := view.NewRemindersModel(a)

	assert.NotContains(t, m.ShortHelp(), "a: add")

	m, cmd := press(t, m, key("p"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Len(t, m.Items(), 2)

	last := a.Notifications.List()
	require.NotEmpty(t, last)
	assert.Equal(t, "تم تحديد الفاتورة كمدفوعة", last[len(last)-1].Message)
}

func TestEntityModel_DefaultOrderMatchesView(t *testing.T) {
	a := loadedApp(t)
	m := view.NewPropertiesModel(a)

	want := property.View(a.Collation()).Apply(a.Properties.List(context.Background()), "", listing.Spec{})
	assert.Equal(t, want, m.Items())
}
