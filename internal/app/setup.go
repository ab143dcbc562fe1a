package app

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/aqari/internal/config"
	"github.com/MrJamesThe3rd/aqari/internal/database"
	"github.com/MrJamesThe3rd/aqari/internal/fixture"
	"github.com/MrJamesThe3rd/aqari/internal/preference"
	"github.com/MrJamesThe3rd/aqari/internal/preference/store"
)

// ConfigFrom maps environment configuration onto an App Config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		LoadDelay:     cfg.Timing.LoadDelay,
		SaveLatency:   cfg.Timing.SaveLatency,
		AuthLatency:   cfg.Timing.AuthLatency,
		DeleteLatency: cfg.Timing.DeleteLatency,
		ToastDisplay:  cfg.Timing.ToastDisplay,
		ToastExit:     cfg.Timing.ToastExit,
		Collation:     cfg.CollationTag(),
		TokenSecret:   cfg.Auth.TokenSecret,
	}
}

// OpenPreferences returns the repository selected by Preferences.Backend and
// a function releasing whatever it holds open.
func OpenPreferences(ctx context.Context, cfg *config.Config) (preference.Repository, func(), error) {
	switch cfg.Preferences.Backend {
	case "file":
		repo, err := store.NewFile(cfg.Preferences.File)
		if err != nil {
			return nil, nil, err
		}

		return repo, func() {}, nil
	case "postgres":
		db, err := database.Open(ctx, cfg.ConnectionString(), database.Pool{MaxOpen: cfg.DB.MaxOpenConns})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		repo := store.NewPostgres(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		return repo, func() { db.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

// Fixtures reads Fixtures.Path when set and the embedded seed otherwise.
func Fixtures(cfg *config.Config) (fixture.Set, error) {
	if cfg.Fixtures.Path == "" {
		return fixture.Default()
	}

	return fixture.Open(cfg.Fixtures.Path)
}
