// Package app wires every collection, the notification queue and the
// account services into the single source of truth shared by the HTTP API
// and the terminal dashboard.
package app

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/auth"
	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/export"
	"github.com/MrJamesThe3rd/aqari/internal/fixture"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/importer"
	"github.com/MrJamesThe3rd/aqari/internal/note"
	"github.com/MrJamesThe3rd/aqari/internal/notify"
	"github.com/MrJamesThe3rd/aqari/internal/preference"
	"github.com/MrJamesThe3rd/aqari/internal/property"
	"github.com/MrJamesThe3rd/aqari/internal/reminder"
	"github.com/MrJamesThe3rd/aqari/internal/report"
	"github.com/MrJamesThe3rd/aqari/internal/tenant"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

const DefaultLoadDelay = 1500 * time.Millisecond

type Config struct {
	LoadDelay     time.Duration
	SaveLatency   time.Duration
	AuthLatency   time.Duration
	DeleteLatency time.Duration
	ToastDisplay  time.Duration
	ToastExit     time.Duration
	Collation     language.Tag
	TokenSecret   string
}

func DefaultConfig() Config {
	return Config{
		LoadDelay:     DefaultLoadDelay,
		SaveLatency:   form.DefaultLatency,
		AuthLatency:   auth.DefaultLatency,
		DeleteLatency: auth.DefaultDeleteLatency,
		ToastDisplay:  notify.DefaultDisplayFor,
		ToastExit:     notify.DefaultExitAfter,
		Collation:     language.Arabic,
	}
}

type App struct {
	Properties   *collection.Controller[property.Property]
	Tenants      *collection.Controller[tenant.Tenant]
	Transactions *collection.Controller[transaction.Transaction]
	Reminders    *collection.Controller[reminder.Reminder]
	Notes        *collection.Controller[note.Note]

	Notifications *notify.Queue
	Preferences   *preference.Service
	Auth          *auth.Service
	Import        *importer.Service
	Export        *export.Service

	cfg     Config
	loading atomic.Bool
	ready   chan struct{}
	once    sync.Once
}

// New builds an App with empty collections. It reports Loading until Load
// completes.
func New(cfg Config, prefs preference.Repository) *App {
	queue := notify.NewQueue(
		notify.WithDisplayFor(cfg.ToastDisplay),
		notify.WithExitAfter(cfg.ToastExit),
	)

	a := &App{
		Properties:   collection.NewController(collection.NewStore[property.Property](), queue, property.Config),
		Tenants:      collection.NewController(collection.NewStore[tenant.Tenant](), queue, tenant.Config),
		Transactions: collection.NewController(collection.NewStore[transaction.Transaction](), queue, transaction.Config),
		Reminders:    collection.NewController(collection.NewStore[reminder.Reminder](), queue, reminder.Config),
		Notes:        collection.NewController(collection.NewStore[note.Note](), queue, note.Config),

		Notifications: queue,
		Preferences:   preference.NewService(prefs),
		Auth: auth.NewService(queue, auth.Config{
			Latency:       cfg.AuthLatency,
			DeleteLatency: cfg.DeleteLatency,
			Secret:        cfg.TokenSecret,
		}),

		cfg:   cfg,
		ready: make(chan struct{}),
	}
	a.Import = importer.NewService(a.Transactions, queue)
	a.Export = export.NewService(a.Transactions, cfg.Collation)
	a.loading.Store(true)

	return a
}

// Load waits for the configured delay, then replaces every collection with
// the fixture set.
func (a *App) Load(ctx context.Context, set fixture.Set) error {
	timer := time.NewTimer(a.cfg.LoadDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	a.Properties.Load(set.Properties)
	a.Tenants.Load(set.Tenants)
	a.Transactions.Load(set.Transactions)
	a.Reminders.Load(set.Reminders)
	a.Notes.Load(set.Notes)

	a.once.Do(func() {
		a.loading.Store(false)
		close(a.ready)
	})

	slog.Info("fixtures loaded",
		"properties", len(set.Properties),
		"tenants", len(set.Tenants),
		"transactions", len(set.Transactions),
		"reminders", len(set.Reminders),
		"notes", len(set.Notes),
	)

	return nil
}

func (a *App) Loading() bool { return a.loading.Load() }

// Ready is closed once the first Load completes.
func (a *App) Ready() <-chan struct{} { return a.ready }

func (a *App) Collation() language.Tag { return a.cfg.Collation }

func (a *App) FormOptions() form.Options {
	return form.Options{Latency: a.cfg.SaveLatency}
}

// MarkPaid removes a reminder.
func (a *App) MarkPaid(ctx context.Context, id int64) (bool, error) {
	return a.Reminders.Remove(ctx, id)
}

func (a *App) Summary(ctx context.Context) report.Summary {
	return report.Summarize(a.Transactions.List(ctx), a.Properties.List(ctx))
}

// Close stops notification timers. Saves already dispatched still land.
func (a *App) Close() {
	a.Notifications.Close()
}
