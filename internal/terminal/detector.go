// Package terminal decides whether the current process should produce
// interactive (colored) output or plain output for pipes and CI systems.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables. Presence of any of
// them (with CI itself required to be truthy) marks a non-interactive run.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"TF_BUILD",
}

// Mode selects how interactivity is decided.
type Mode int

const (
	// ModeAuto detects from the environment: CI markers, then a TTY check.
	ModeAuto Mode = iota
	// ModeAlways forces interactive output.
	ModeAlways
	// ModeNever forces plain output.
	ModeNever
)

// Interactive reports whether output should be treated as interactive.
func Interactive(mode Mode) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if InCI() {
		return false
	}
	return IsTerminal()
}

// IsTerminal reports whether stdout is connected to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// InCI reports whether the process appears to run under a CI system.
func InCI() bool {
	for _, name := range ciEnvVars {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		// CI=false / CI=0 explicitly opts out
		if name == "CI" {
			lower := strings.ToLower(strings.TrimSpace(value))
			return lower != "false" && lower != "0" && lower != "no"
		}
		return true
	}
	return false
}
