package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Filename is the default config file name.
const Filename = "spendnote.yaml"

// Config represents the top-level spendnote.yaml configuration.
type Config struct {
	Month     string `yaml:"month"`      // report month label, e.g. "Nov"
	Year      string `yaml:"year"`       // year stamped onto every date, e.g. "2024"
	OutputDir string `yaml:"output_dir"` // where the report CSV is written
	LogLevel  string `yaml:"log_level"`  // debug, info, or error
}

// Load reads a spendnote.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config labeled for the month containing now.
func Default(now time.Time) *Config {
	return &Config{
		Month:     now.Format("Jan"),
		Year:      now.Format("2006"),
		OutputDir: ".",
		LogLevel:  "info",
	}
}
