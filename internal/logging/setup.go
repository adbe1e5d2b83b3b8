package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrInvalidLogLevel is returned for an unrecognized level name.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

// Setup installs the process-wide default logger: a text handler on w with
// the given minimum level, tagging every record with the run ID.
func Setup(w io.Writer, levelName, runID string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("run_id", runID))
	return nil
}
