package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/aqari/internal/form"
)

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const themeKey = "theme"

var ErrNotFound = errors.New("preference not set")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=preference
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ParseTheme accepts only the three known themes.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, true
	default:
		return "", false
	}
}

// Theme returns the stored theme, or ThemeSystem when none (or garbage) is stored.
func (s *Service) Theme(ctx context.Context) (Theme, error) {
	raw, err := s.repo.Get(ctx, themeKey)
	if errors.Is(err, ErrNotFound) {
		return ThemeSystem, nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	theme, ok := ParseTheme(raw)
	if !ok {
		return ThemeSystem, nil
	}

	return theme, nil
}

func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	if _, ok := ParseTheme(string(theme)); !ok {
		return &form.ValidationError{Fields: []string{"theme"}, Reason: "must be light, dark or system"}
	}

	if err := s.repo.Set(ctx, themeKey, string(theme)); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	return nil
}

// Resolve returns the scheme actually applied: system follows the
// environment, the others are fixed.
func Resolve(theme Theme, systemDark bool) Theme {
	switch theme {
	case ThemeLight, ThemeDark:
		return theme
	default:
		if systemDark {
			return ThemeDark
		}

		return ThemeLight
	}
}
