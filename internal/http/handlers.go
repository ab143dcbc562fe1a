package http

import (
	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/http/auth"
	"github.com/MrJamesThe3rd/aqari/internal/http/export"
	"github.com/MrJamesThe3rd/aqari/internal/http/importcsv"
	"github.com/MrJamesThe3rd/aqari/internal/http/note"
	"github.com/MrJamesThe3rd/aqari/internal/http/notification"
	"github.com/MrJamesThe3rd/aqari/internal/http/preference"
	"github.com/MrJamesThe3rd/aqari/internal/http/property"
	"github.com/MrJamesThe3rd/aqari/internal/http/reminder"
	"github.com/MrJamesThe3rd/aqari/internal/http/report"
	"github.com/MrJamesThe3rd/aqari/internal/http/status"
	"github.com/MrJamesThe3rd/aqari/internal/http/tenant"
	"github.com/MrJamesThe3rd/aqari/internal/http/transaction"
)

// HandlersFor builds every API handler over a single App.
func HandlersFor(a *app.App) Handlers {
	var (
		forms = a.FormOptions()
		tag   = a.Collation()
	)

	return Handlers{
		Properties:    property.NewHandler(a.Properties, forms, tag),
		Tenants:       tenant.NewHandler(a.Tenants, forms, tag),
		Transactions:  transaction.NewHandler(a.Transactions, forms, tag),
		Notes:         note.NewHandler(a.Notes, forms, tag),
		Reminders:     reminder.NewHandler(a.Reminders, tag),
		Notifications: notification.NewHandler(a.Notifications),
		Preferences:   preference.NewHandler(a.Preferences),
		Auth:          auth.NewHandler(a.Auth),
		Reports:       report.NewHandler(a),
		Status:        status.NewHandler(a, a.Preferences),
		Import:        importcsv.NewHandler(a.Import),
		Export:        export.NewHandler(a.Export),
		Loading:       a.Loading,
	}
}
