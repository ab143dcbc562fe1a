package transaction

import (
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/http/resource"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

func NewHandler(ctrl resource.Controller[transaction.Transaction], forms form.Options, tag language.Tag) *resource.Handler[transaction.Transaction] {
	return resource.NewHandler(resource.Config[transaction.Transaction]{
		Controller: ctrl,
		Schema:     transaction.Schema(),
		View:       transaction.View(tag),
		Forms:      forms,
		Encode:     func(tx transaction.Transaction) any { return ToResponse(tx) },
	})
}
