// Package config loads the optional stampline.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/docker/go-units"
	"gopkg.in/yaml.v3"
)

// Config represents a stampline.yaml configuration file.
type Config struct {
	MaxLine  string `yaml:"max_line"  json:"max_line"`  // e.g. "255", "4KiB", "1MiB"
	Overlong string `yaml:"overlong"  json:"overlong"`  // truncate|reject|split
	UTC      bool   `yaml:"utc"       json:"utc"`
	Color    string `yaml:"color"     json:"color"`     // never|auto|always
	Journal  bool   `yaml:"journal"   json:"journal"`   // mirror diagnostics to journald
	LogLevel string `yaml:"log_level" json:"log_level"` // debug|info|warn|error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxLine:  "64KiB",
		Overlong: "truncate",
		UTC:      false,
		Color:    "never",
		Journal:  false,
		LogLevel: "warn",
	}
}

// Parse decodes YAML on top of the defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// MaxLineBytes parses MaxLine. Binary multiples are used for both "KB" and "KiB".
func (c *Config) MaxLineBytes() (int, error) {
	n, err := units.RAMInBytes(c.MaxLine)
	if err != nil {
		return 0, fmt.Errorf("max_line: %w", err)
	}
	return int(n), nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
