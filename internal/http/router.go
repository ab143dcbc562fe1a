package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/aqari/internal/http/auth"
	"github.com/MrJamesThe3rd/aqari/internal/http/export"
	"github.com/MrJamesThe3rd/aqari/internal/http/importcsv"
	"github.com/MrJamesThe3rd/aqari/internal/http/notification"
	"github.com/MrJamesThe3rd/aqari/internal/http/preference"
	"github.com/MrJamesThe3rd/aqari/internal/http/reminder"
	"github.com/MrJamesThe3rd/aqari/internal/http/report"
	"github.com/MrJamesThe3rd/aqari/internal/http/status"
)

// Routable is a handler that mounts itself on a sub-router.
type Routable interface {
	Routes(r chi.Router)
}

type Handlers struct {
	Properties    Routable
	Tenants       Routable
	Transactions  Routable
	Notes         Routable
	Reminders     *reminder.Handler
	Notifications *notification.Handler
	Preferences   *preference.Handler
	Auth          *auth.Handler
	Reports       *report.Handler
	Status        *status.Handler
	Import        *importcsv.Handler
	Export        *export.Handler

	// Loading reports whether the initial data is still being loaded.
	// Writes are refused while it returns true.
	Loading func() bool
}

// whileLoading answers 503 to every write until the collections hold their
// initial data.
func whileLoading(loading func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
			default:
				if loading != nil && loading() {
					w.Header().Set("Retry-After", "1")
					http.Error(w, "data is still loading", http.StatusServiceUnavailable)

					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func New(h Handlers, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		gate := whileLoading(h.Loading)

		entity := func(path string, handler Routable) {
			r.Route(path, func(r chi.Router) {
				r.Use(gate)
				r.Use(middleware.AllowContentType("application/json"))
				handler.Routes(r)
			})
		}

		entity("/properties", h.Properties)
		entity("/tenants", h.Tenants)
		entity("/transactions", h.Transactions)
		entity("/notes", h.Notes)

		r.Route("/reminders", func(r chi.Router) {
			r.Use(gate)
			h.Reminders.Routes(r)
		})
		r.Route("/notifications", h.Notifications.Routes)

		r.Route("/preferences", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Preferences.Routes(r)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)
		})

		r.Route("/import", func(r chi.Router) {
			r.Use(gate)
			h.Import.Routes(r)
		})
		r.Route("/export", h.Export.Routes)

		r.Route("/reports", h.Reports.Routes)
		r.Route("/status", h.Status.Routes)
	})

	return router
}
