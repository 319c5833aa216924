// Package preferences stores the CLI's last used filter and logged in user.
package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/filter"
)

// CurrentVersion is the only layout Load accepts.
const CurrentVersion = 1

// ErrUnsupportedVersion is returned by Load for files written by another
// layout version.
var ErrUnsupportedVersion = errors.New("unsupported preferences version")

type Preferences struct {
	Version   int               `json:"version"`
	UserID    string            `json:"userId,omitempty"`
	Frequency filter.Frequency  `json:"frequency"`
	DateRange []string          `json:"dateRange,omitempty"`
	Type      filter.TypeFilter `json:"type"`
}

// Default is used when no preferences file exists yet.
func Default() Preferences {
	return Preferences{
		Version:   CurrentVersion,
		Frequency: filter.FrequencyWeek,
		Type:      filter.TypeAll,
	}
}

func (p Preferences) Filter() filter.Filter {
	return filter.Filter{
		Frequency: p.Frequency,
		DateRange: p.DateRange,
		Type:      p.Type,
	}
}

func (p Preferences) Validate() error {
	if p.Version != CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	}
	if p.UserID != "" {
		if _, err := uuid.FromString(p.UserID); err != nil {
			return fmt.Errorf("invalid userId: %w", err)
		}
	}
	return p.Filter().Validate()
}

// DefaultPath is preferences.json under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "expensectl", "preferences.json"), nil
}

// Load reads and validates the preferences at path. A missing file yields
// Default.
func Load(path string) (Preferences, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, err
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Preferences{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save validates p and replaces the file at path.
func Save(path string, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
