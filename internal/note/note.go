package note

import (
	"time"

	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

// Color is the sticky-note colour of a note.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
)

var Colors = []Color{ColorYellow, ColorBlue, ColorGreen, ColorPink}

type Note struct {
	ID        int64
	Title     string
	Content   string
	Color     Color
	CreatedAt time.Time
}

func (n Note) Key() int64 { return n.ID }

func (n Note) WithKey(id int64) Note {
	n.ID = id
	return n
}

var Config = collection.Config{
	Placement: collection.Append,
	Messages: collection.Messages{
		Added:   "تمت إضافة الملاحظة بنجاح",
		Updated: "تم تحديث الملاحظة بنجاح",
		Removed: "تم حذف الملاحظة",
	},
}

func Schema() form.Schema[Note] {
	choices := make([]string, len(Colors))
	for i, c := range Colors {
		choices[i] = string(c)
	}

	return form.Schema[Note]{
		Blank: func() Note { return Note{Color: ColorYellow} },
		Fields: []form.Field[Note]{
			{
				Name: "title", Label: "العنوان", Required: true,
				Get: func(n Note) string { return n.Title },
				Set: func(n *Note, v form.Value) { n.Title = v.String() },
			},
			{
				Name: "content", Label: "المحتوى", Required: true,
				Get: func(n Note) string { return n.Content },
				Set: func(n *Note, v form.Value) { n.Content = v.String() },
			},
			{
				Name: "color", Label: "اللون", Kind: form.KindChoice, Required: true, Choices: choices,
				Get: func(n Note) string { return string(n.Color) },
				Set: func(n *Note, v form.Value) { n.Color = Color(v.String()) },
			},
		},
		OnCreate: func(n Note) Note {
			n.CreatedAt = time.Now()
			return n
		},
	}
}

func View(tag language.Tag) listing.View[Note] {
	return listing.View[Note]{
		Fields: []listing.Field[Note]{
			{Name: "title", Value: func(n Note) string { return n.Title }},
			{Name: "content", Value: func(n Note) string { return n.Content }},
		},
		Keys: []listing.Key[Note]{
			listing.Text("title", tag, func(n Note) string { return n.Title }),
			listing.Ordered("createdAt", func(n Note) int64 { return n.CreatedAt.UnixNano() }),
		},
		Default: listing.Spec{Key: "createdAt", Direction: listing.Desc},
	}
}
