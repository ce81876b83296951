// Package config reads the optional ~/.pagepad.json settings file.
// Flags always win; the file only supplies defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Server    string `json:"server,omitempty"`     // default server URL for edit
	ExportDir string `json:"export_dir,omitempty"` // where exports are written
	Encoding  string `json:"encoding,omitempty"`   // utf-8 | gbk
}

// DefaultPath is ~/.pagepad.json, or empty when no home dir resolves.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pagepad.json")
}

// Load reads the settings file. A missing file is not an error: it
// yields an empty config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
