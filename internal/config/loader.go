package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Parse parses and validates rule file content.
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the rule file at path. Values present in the file
// override the defaults; absent values keep them.
func Load(path string) (*Config, error) {
	// #nosec G304 - path is an operator-supplied rule file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}
	return Parse(content)
}
