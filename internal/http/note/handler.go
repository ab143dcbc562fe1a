package note

import (
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/http/resource"
	"github.com/MrJamesThe3rd/aqari/internal/note"
)

func NewHandler(ctrl resource.Controller[note.Note], forms form.Options, tag language.Tag) *resource.Handler[note.Note] {
	return resource.NewHandler(resource.Config[note.Note]{
		Controller: ctrl,
		Schema:     note.Schema(),
		View:       note.View(tag),
		Forms:      forms,
		Encode:     func(n note.Note) any { return toResponse(n) },
	})
}
