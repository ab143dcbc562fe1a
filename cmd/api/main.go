package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/config"
	aqariHttp "github.com/MrJamesThe3rd/aqari/internal/http"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefs, closePrefs, err := app.OpenPreferences(ctx, cfg)
	if err != nil {
		slog.Error("failed to open preferences", "backend", cfg.Preferences.Backend, "error", err)
		os.Exit(1)
	}
	defer closePrefs()

	set, err := app.Fixtures(cfg)
	if err != nil {
		slog.Error("failed to read fixtures", "path", cfg.Fixtures.Path, "error", err)
		os.Exit(1)
	}

	a := app.New(app.ConfigFrom(cfg), prefs)
	defer a.Close()

	go func() {
		if err := a.Load(ctx, set); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("failed to load fixtures", "error", err)
		}
	}()

	router := aqariHttp.New(aqariHttp.HandlersFor(a), cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
