// Package config loads the optional notepad settings file.
//
// The file only carries ambient settings (logging, clipboard backend,
// dialog start directory, colour). The editor always starts with an empty
// buffer and default styling regardless of what is configured here.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no --config flag or NOTEPAD_CONFIG is given.
const DefaultPath = "notepad.yaml"

// Clipboard backends.
const (
	ClipboardSystem = "system"
	ClipboardMemory = "memory"
)

// Config is the settings file model.
type Config struct {
	Log       LogConfig    `yaml:"log"`
	Clipboard string       `yaml:"clipboard"`
	Dialog    DialogConfig `yaml:"dialog"`
	NoColor   bool         `yaml:"no_color"`
}

// LogConfig controls the structured log file.
type LogConfig struct {
	Level slog.Level `yaml:"level"`
	File  string     `yaml:"file"` // empty: discard
}

// DialogConfig controls the file dialogs.
type DialogConfig struct {
	StartDir string `yaml:"start_dir"` // empty: working directory
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: slog.LevelInfo},
		Clipboard: ClipboardSystem,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Clipboard == "" {
		c.Clipboard = ClipboardSystem
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Clipboard, validation.In(ClipboardSystem, ClipboardMemory)),
	); err != nil {
		return err
	}
	return c.Dialog.Validate()
}

// Validate checks that a configured start directory exists.
func (c *DialogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.StartDir, validation.By(func(v any) error {
			dir, _ := v.(string)
			if dir == "" {
				return nil
			}
			fi, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !fi.IsDir() {
				return errors.New("not a directory")
			}
			return nil
		})),
	)
}

// Load reads path, expands environment variables and validates the result.
// Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
// The boolean reports whether a file was read.
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Save writes c as YAML, creating parent directories.
func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
