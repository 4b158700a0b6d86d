package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gospell/pkg/fsutil"
)

// LoadSettings reads and parses a configuration file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to path atomically. Writing is skipped when the file
// already holds identical content.
func Save(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if _, err := fsutil.WriteAtomicIfChanged(context.Background(), path, data, 0); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}
