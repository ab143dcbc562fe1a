package note_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/note"
	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

var seed = []note.Note{
	{ID: 1, Title: "تجديد عقد", Content: "تجديد عقد أحمد القحطاني لوحدة 101 قبل نهاية الشهر.", Color: note.ColorYellow, CreatedAt: day("2023-11-10")},
	{ID: 2, Title: "صيانة المصعد", Content: "الاتصال بشركة الصيانة لفحص المصعد في برج النخيل.", Color: note.ColorBlue, CreatedAt: day("2023-11-08")},
	{ID: 3, Title: "فواتير الكهرباء", Content: "متابعة سداد فواتير الكهرباء لجميع العقارات.", Color: note.ColorGreen, CreatedAt: day("2023-11-05")},
}

func TestCreateThroughForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := notify.NewMockNotifier(ctrl)
	notifier.EXPECT().Push("تمت إضافة الملاحظة بنجاح", notify.KindSuccess).Times(1)

	c := collection.NewController(collection.NewStore(seed...), notifier, note.Config)

	f := form.NewCreate(note.Schema(), form.ControllerSaver[note.Note](c), form.Options{Latency: 10 * time.Millisecond})
	require.NoError(t, f.SetField("title", "x"))
	require.NoError(t, f.SetField("content", "y"))
	require.NoError(t, f.SetField("color", "blue"))

	before := time.Now()

	pending, err := f.Submit(context.Background())
	require.NoError(t, err)

	got, err := pending.Wait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, note.ColorBlue, got.Color)
	assert.False(t, got.CreatedAt.Before(before))

	all := c.List(context.Background())
	require.Len(t, all, 4)
	assert.Equal(t, got, all[3])
}

func TestEditKeepsCreatedAt(t *testing.T) {
	c := collection.NewController(collection.NewStore(seed...), nil, note.Config)

	f := form.NewEdit(note.Schema(), form.ControllerSaver[note.Note](c), seed[1], form.Options{})
	require.NoError(t, f.SetField("title", "صيانة المصعد - عاجل"))

	pending, err := f.Submit(context.Background())
	require.NoError(t, err)

	got, err := pending.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed[1].CreatedAt, got.CreatedAt)

	stored, err := c.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "صيانة المصعد - عاجل", stored.Title)
}

func TestView(t *testing.T) {
	view := note.View(language.Arabic)

	got := view.Apply(seed, "", listing.Spec{})
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})

	got = view.Apply(seed, "الكهرباء", listing.ParseSpec("createdAt-asc"))
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestSchema_RejectsUnknownColor(t *testing.T) {
	f := form.NewCreate(note.Schema(), form.SaverFunc[note.Note](nil), form.Options{})

	err := f.SetField("color", "purple")
	assert.True(t, form.IsValidation(err))
}
