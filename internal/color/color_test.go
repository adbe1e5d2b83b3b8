package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette_Enabled(t *testing.T) {
	p := NewPalette(true)
	assert.True(t, p.Enabled())
	assert.Equal(t, "\033[31mbad\033[0m", p.Red("bad"))
	assert.Equal(t, "\033[32mok\033[0m", p.Green("ok"))
	assert.Equal(t, "\033[33mwarn\033[0m", p.Yellow("warn"))
	assert.Equal(t, "\033[36minfo\033[0m", p.Cyan("info"))
	assert.Equal(t, "\033[90mdim\033[0m", p.Gray("dim"))
}

func TestPalette_Disabled(t *testing.T) {
	p := NewPalette(false)
	assert.False(t, p.Enabled())
	assert.Equal(t, "bad", p.Red("bad"))
	assert.Equal(t, "dim", p.Gray("dim"))
}

func TestPalette_ZeroValueIsPlain(t *testing.T) {
	var p Palette
	assert.Equal(t, "text", p.Cyan("text"))
}
