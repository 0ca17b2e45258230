package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/danieljhkim/planswitch/internal/fsops"
)

// LEDInfo is the explanation written next to the LED toggle in settings.json.
const LEDInfo = "Sets the power button LED colour on Lenovo Legion laptops when the power plan changes. " +
	"Power saver and balanced turn it white, high performance turns it red."

// Settings are the user-editable plugin settings.
type Settings struct {
	LegionLEDEnabled bool   `json:"lenovo_legion_led_enabled"`
	LegionLEDInfo    string `json:"lenovo_legion_led_info"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{LegionLEDEnabled: true, LegionLEDInfo: LEDInfo}
}

// LoadSettings reads settings.json, creating it with defaults when it does
// not exist. PLANSWITCH_DISABLE_LED, when set to a true value, disables the
// LED integration regardless of the file.
func LoadSettings(fs fsops.FS, path string) (Settings, error) {
	s, err := readSettings(fs, path)
	if err != nil {
		return s, err
	}
	if v, ok := os.LookupEnv(EnvDisableLED); ok {
		if disable, err := strconv.ParseBool(v); err == nil && disable {
			s.LegionLEDEnabled = false
		}
	}
	return s, nil
}

func readSettings(fs fsops.FS, path string) (Settings, error) {
	data, err := fs.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s := DefaultSettings()
		if err := SaveSettings(fs, path, s); err != nil {
			return s, err
		}
		return s, nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to read settings: %w", err)
	}

	// Keys absent from the file keep their defaults.
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// SaveSettings writes settings.json atomically.
func SaveSettings(fs fsops.FS, path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := fs.AtomicWrite(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
