// Package config loads and validates escaping rule files for the pathscrub
// command. Rule files are TOML and declare which characters the target
// filesystem forbids and, optionally, custom placeholder strings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isseis/go-safe-path/internal/pathescape"
)

// Error definitions for the config package
var (
	// ErrNoForbiddenChars is returned when a rule file declares neither a
	// forbidden set nor custom replacements.
	ErrNoForbiddenChars = errors.New("rule file must declare forbidden characters or replacements")

	// ErrMultiByteKey is returned when a replacements key is not a single byte.
	ErrMultiByteKey = errors.New("replacements keys must be single characters")

	// ErrInvalidColorMode is returned for an unknown output.color value.
	ErrInvalidColorMode = errors.New("output.color must be one of auto, always, never")
)

// Config is the root of a pathscrub rule file.
type Config struct {
	Escape EscapeConfig `toml:"escape"`
	Output OutputConfig `toml:"output"`
}

// EscapeConfig declares the forbidden-character rules.
type EscapeConfig struct {
	// Forbidden lists the forbidden characters as a single string.
	Forbidden string `toml:"forbidden"`

	// Control additionally forbids the control bytes 0x00-0x1f.
	Control bool `toml:"control"`

	// Replacements maps single characters to custom placeholder strings,
	// overriding the default hex placeholders for those characters.
	Replacements map[string]string `toml:"replacements"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	// Color is "auto" (default), "always", or "never".
	Color string `toml:"color"`
}

// Default returns the configuration used when no rule file is given:
// the characters reserved on Windows filesystems plus control bytes, the
// most restrictive common target.
func Default() *Config {
	return &Config{
		Escape: EscapeConfig{
			Forbidden: `<>:"|?*\`,
			Control:   true,
		},
		Output: OutputConfig{Color: "auto"},
	}
}

// Validate checks the config for declaration errors.
func (c *Config) Validate() error {
	if c.Escape.Forbidden == "" && !c.Escape.Control && len(c.Escape.Replacements) == 0 {
		return ErrNoForbiddenChars
	}
	for k := range c.Escape.Replacements {
		if len(k) != 1 {
			return fmt.Errorf("%w: %q", ErrMultiByteKey, k)
		}
	}
	switch c.Output.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidColorMode, c.Output.Color)
	}
	return nil
}

// Escaper builds the pathescape.Escaper the config describes.
// The config must have been validated.
func (c *Config) Escaper() *pathescape.Escaper {
	var forbidden strings.Builder
	forbidden.WriteString(c.Escape.Forbidden)
	if c.Escape.Control {
		for b := byte(0); b < 0x20; b++ {
			forbidden.WriteByte(b)
		}
	}

	if len(c.Escape.Replacements) == 0 {
		return pathescape.New(forbidden.String())
	}

	// Custom placeholders override the hex default per character.
	repl := make(map[byte]string, forbidden.Len()+len(c.Escape.Replacements))
	fs := forbidden.String()
	for i := 0; i < len(fs); i++ {
		repl[fs[i]] = fmt.Sprintf("_%02x_", fs[i])
	}
	for k, v := range c.Escape.Replacements {
		repl[k[0]] = v
	}
	return pathescape.NewWithReplacements(repl)
}
