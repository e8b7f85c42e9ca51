package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/toutdo/pkg/core"
)

// SettingsFileName is the optional settings document inside the data directory.
const SettingsFileName = "settings.yaml"

// ErrInvalidSettings is returned when settings.yaml cannot be used.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the user-editable preferences stored next to the notes.
type Settings struct {
	// Ordering is "pinned-first" (default) or "insertion".
	Ordering string `yaml:"ordering" validate:"omitempty,oneof=pinned-first insertion"`
	// Notifications controls whether desktop alerts are shown at startup.
	Notifications *bool `yaml:"notifications,omitempty"`
	// EventBuffer is the per-subscriber buffer; zero means default.
	EventBuffer int `yaml:"event_buffer,omitempty" validate:"gte=0,lte=100000"`
	// Watch reloads the notes when the file is edited by another process.
	Watch bool `yaml:"watch,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	enabled := true
	return Settings{
		Ordering:      string(core.OrderPinnedFirst),
		Notifications: &enabled,
		EventBuffer:   core.DefaultEventBuffer,
	}
}

// NotificationsEnabled reports the effective notification switch.
func (s Settings) NotificationsEnabled() bool {
	return s.Notifications == nil || *s.Notifications
}

var validate = validator.New()

// LoadSettings reads settings.yaml from dir. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func LoadSettings(dir string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, SettingsFileName))
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return DefaultSettings(), fmt.Errorf("%w: %s: %v", ErrInvalidSettings, SettingsFileName, err)
	}

	if err := validate.Struct(s); err != nil {
		return DefaultSettings(), fmt.Errorf("%w: %s: %v", ErrInvalidSettings, SettingsFileName, err)
	}
	return s, nil
}

// SaveSettings writes s to settings.yaml in dir, creating dir if needed.
func SaveSettings(dir string, s Settings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, SettingsFileName), data, 0644)
}
