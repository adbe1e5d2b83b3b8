// Package main provides the entry point for the pathscrub command. It loads
// escaping rules from a TOML file (or uses the built-in Windows rules),
// sanitizes path fragments read from arguments or stdin, and prints the
// filesystem-safe result one path per line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/isseis/go-safe-path/internal/cmdcommon"
	"github.com/isseis/go-safe-path/internal/color"
	"github.com/isseis/go-safe-path/internal/config"
	"github.com/isseis/go-safe-path/internal/logging"
	"github.com/isseis/go-safe-path/internal/pathescape"
	"github.com/isseis/go-safe-path/internal/segstring"
	"github.com/isseis/go-safe-path/internal/terminal"
)

// Error definitions
var (
	ErrNoInput          = errors.New("no paths given on the command line or stdin")
	ErrUnknownColorMode = errors.New("unknown color mode")
)

var (
	rulesFile = flag.String("config", "", "path to TOML rule file (default: "+cmdcommon.DefaultRulesPath+" if present)")
	forbidden = flag.String("forbidden", "", "inline forbidden-character set, overrides the rule file")
	prefix    = flag.String("prefix", "", "directory prefix prepended to every path, not escaped")
	suffix    = flag.String("suffix", "", "suffix appended to every path, not escaped")
	logLevel  = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	colorFlag = flag.String("color", "", "color output (auto, always, never); overrides the rule file")
)

func main() {
	runID := logging.GenerateRunID()
	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "pathscrub: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	if err := logging.Setup(os.Stderr, *logLevel, runID); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode, err := colorMode(cfg)
	if err != nil {
		return err
	}
	palette := color.NewPalette(terminal.Interactive(mode))

	paths, err := inputPaths()
	if err != nil {
		return err
	}

	esc := cfg.Escaper()
	opts := options{prefix: *prefix, suffix: *suffix}
	changed := processPaths(os.Stdout, esc, opts, paths)

	slog.Info("escaping completed", "paths", len(paths), "changed", changed)
	if palette.Enabled() && changed > 0 {
		fmt.Fprintln(os.Stderr, palette.Yellow(fmt.Sprintf("%d of %d paths contained forbidden characters", changed, len(paths))))
	}
	return nil
}

// loadConfig resolves the escaping rules: inline -forbidden wins, then an
// explicit or discovered rule file, then the built-in defaults.
func loadConfig() (*config.Config, error) {
	if *forbidden != "" {
		cfg := &config.Config{
			Escape: config.EscapeConfig{Forbidden: *forbidden},
			Output: config.OutputConfig{Color: "auto"},
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	path := cmdcommon.RulesPath(*rulesFile)
	if *rulesFile == "" {
		// Discovered locations are optional; missing means defaults.
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return cfg, nil
}

func colorMode(cfg *config.Config) (terminal.Mode, error) {
	name := cfg.Output.Color
	if *colorFlag != "" {
		name = *colorFlag
	}
	switch name {
	case "", "auto":
		return terminal.ModeAuto, nil
	case "always":
		return terminal.ModeAlways, nil
	case "never":
		return terminal.ModeNever, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColorMode, name)
	}
}

// inputPaths returns the paths to escape: command line arguments if present,
// otherwise one path per line from stdin.
func inputPaths() ([]string, error) {
	if args := flag.Args(); len(args) > 0 {
		return args, nil
	}

	var paths []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	return paths, nil
}

type options struct {
	prefix string
	suffix string
}

// processPaths escapes every path, assembling prefix + escaped path + suffix
// through a segment chain so the result is materialized exactly once per
// line. Returns how many paths needed escaping.
func processPaths(w io.Writer, esc *pathescape.Escaper, opts options, paths []string) int {
	base := segstring.SegString{}
	if opts.prefix != "" {
		base = segstring.New(opts.prefix)
	}

	changed := 0
	for _, p := range paths {
		full := esc.EscapeAppend(base, p)
		if opts.suffix != "" {
			full = full.Append(opts.suffix)
		}
		if !esc.EscapeToChain(p).EqualString(p) {
			changed++
			slog.Debug("path contained forbidden characters", "path", p)
		}
		fmt.Fprintln(w, full.String())
	}
	return changed
}
