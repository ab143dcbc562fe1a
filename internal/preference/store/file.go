package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/MrJamesThe3rd/aqari/internal/preference"
)

const section = "preferences."

// File keeps preferences in a TOML file under a [preferences] table.
type File struct {
	mu   sync.Mutex
	path string
	v    *viper.Viper
}

// NewFile loads path if it exists. A missing file is created on the first Set.
func NewFile(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading preferences file: %w", err)
		}
	}

	return &File{path: path, v: v}, nil
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.v.IsSet(section + key) {
		return "", preference.ErrNotFound
	}

	return f.v.GetString(section + key), nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}

	f.v.Set(section+key, value)

	if err := f.v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}

	return nil
}
