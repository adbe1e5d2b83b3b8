package cmdcommon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesPath(t *testing.T) {
	t.Run("flag takes precedence", func(t *testing.T) {
		t.Setenv(RulesPathEnvVar, "/from/env.toml")
		assert.Equal(t, "/from/flag.toml", RulesPath("/from/flag.toml"))
	})

	t.Run("environment beats default", func(t *testing.T) {
		t.Setenv(RulesPathEnvVar, "/from/env.toml")
		assert.Equal(t, "/from/env.toml", RulesPath(""))
	})

	t.Run("default when nothing set", func(t *testing.T) {
		t.Setenv(RulesPathEnvVar, "")
		assert.Equal(t, DefaultRulesPath, RulesPath(""))
	})
}
