// Package models defines shared configuration and presentation types.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime defaults that CLI flags may override.
type Config struct {
	TopWords       int    `yaml:"top_words"`
	Format         string `yaml:"format"`
	History        bool   `yaml:"history"`
	DetectLanguage bool   `yaml:"detect_language"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		TopWords:       5,
		Format:         "banner",
		History:        true,
		DetectLanguage: true,
	}
}

// LoadConfig reads a YAML config file. Fields the file leaves out keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
