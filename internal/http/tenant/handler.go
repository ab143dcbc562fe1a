package tenant

import (
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/http/resource"
	"github.com/MrJamesThe3rd/aqari/internal/tenant"
)

func NewHandler(ctrl resource.Controller[tenant.Tenant], forms form.Options, tag language.Tag) *resource.Handler[tenant.Tenant] {
	return resource.NewHandler(resource.Config[tenant.Tenant]{
		Controller: ctrl,
		Schema:     tenant.Schema(),
		View:       tenant.View(tag),
		Forms:      forms,
		Encode:     func(t tenant.Tenant) any { return toResponse(t) },
	})
}
