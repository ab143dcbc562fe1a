package property

import (
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/http/resource"
	"github.com/MrJamesThe3rd/aqari/internal/property"
)

func NewHandler(ctrl resource.Controller[property.Property], forms form.Options, tag language.Tag) *resource.Handler[property.Property] {
	return resource.NewHandler(resource.Config[property.Property]{
		Controller: ctrl,
		Schema:     property.Schema(),
		View:       property.View(tag),
		Forms:      forms,
		Encode:     func(p property.Property) any { return toResponse(p) },
	})
}
