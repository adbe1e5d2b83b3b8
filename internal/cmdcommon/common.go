// Package cmdcommon provides common functionality for command-line tools.
package cmdcommon

import "os"

// Build-time variables (set via ldflags)
var (
	DefaultRulesPath = "/usr/local/etc/pathscrub/rules.toml" // fallback default
)

// RulesPathEnvVar overrides the default rule-file location when set.
const RulesPathEnvVar = "PATHSCRUB_RULES"

// RulesPath resolves the rule-file path. Command line arguments take
// precedence over the environment variable, which takes precedence over the
// built-in default.
func RulesPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(RulesPathEnvVar); env != "" {
		return env
	}
	return DefaultRulesPath
}
