package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Aqari"`
		Port int    `envconfig:"PORT" default:"8080"`
		// Collation is the BCP 47 tag used to order text columns.
		Collation string `envconfig:"COLLATION" default:"ar"`
	}

	DB struct {
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Port         int    `envconfig:"DB_PORT" default:"5432"`
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:""`
		Name         string `envconfig:"DB_NAME" default:"aqari"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Preferences struct {
		// Backend is one of memory, file or postgres.
		Backend string `envconfig:"PREFERENCES_BACKEND" default:"memory"`
		File    string `envconfig:"PREFERENCES_FILE" default:"aqari-preferences.toml"`
	}

	Fixtures struct {
		Path string `envconfig:"FIXTURES_PATH"`
	}

	Timing struct {
		LoadDelay     time.Duration `envconfig:"LOAD_DELAY" default:"1500ms"`
		SaveLatency   time.Duration `envconfig:"SAVE_LATENCY" default:"600ms"`
		AuthLatency   time.Duration `envconfig:"AUTH_LATENCY" default:"1500ms"`
		DeleteLatency time.Duration `envconfig:"DELETE_LATENCY" default:"2000ms"`
		ToastDisplay  time.Duration `envconfig:"TOAST_DISPLAY" default:"4s"`
		ToastExit     time.Duration `envconfig:"TOAST_EXIT" default:"300ms"`
	}

	Auth struct {
		TokenSecret string `envconfig:"TOKEN_SECRET" default:"aqari-demo-secret"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// CollationTag parses App.Collation, falling back to Arabic.
func (c *Config) CollationTag() language.Tag {
	tag, err := language.Parse(c.App.Collation)
	if err != nil {
		return language.Arabic
	}

	return tag
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Preferences.Backend {
	case "memory", "file", "postgres":
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", cfg.Preferences.Backend)
	}

	return &cfg, nil
}
