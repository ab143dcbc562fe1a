package app

import (
	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/note"
	"github.com/MrJamesThe3rd/aqari/internal/property"
	"github.com/MrJamesThe3rd/aqari/internal/tenant"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

// Each form constructor opens a create form when record is nil and an edit
// form on a copy of *record otherwise.

func (a *App) PropertyForm(record *property.Property) *form.Form[property.Property] {
	return open(property.Schema(), a.Properties, record, a.FormOptions())
}

func (a *App) TenantForm(record *tenant.Tenant) *form.Form[tenant.Tenant] {
	return open(tenant.Schema(), a.Tenants, record, a.FormOptions())
}

func (a *App) TransactionForm(record *transaction.Transaction) *form.Form[transaction.Transaction] {
	return open(transaction.Schema(), a.Transactions, record, a.FormOptions())
}

func (a *App) NoteForm(record *note.Note) *form.Form[note.Note] {
	return open(note.Schema(), a.Notes, record, a.FormOptions())
}

func open[T collection.Entity[T]](schema form.Schema[T], ctrl *collection.Controller[T], record *T, opts form.Options) *form.Form[T] {
	saver := form.ControllerSaver[T](ctrl)

	if record == nil {
		return form.NewCreate(schema, saver, opts)
	}

	return form.NewEdit(schema, saver, *record, opts)
}
