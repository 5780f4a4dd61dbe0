package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("empty scheme gets default preset", func(t *testing.T) {
		var c ColorScheme
		c.ApplyDefaults()
		assert.Equal(t, *Default(), c)
	})

	t.Run("custom values are kept", func(t *testing.T) {
		c := ColorScheme{Preset: "monochrome", Accent: "#123456"}
		c.ApplyDefaults()
		assert.Equal(t, "#123456", c.Accent)
		assert.Equal(t, Monochrome().Subtle, c.Subtle)
	})

	t.Run("unknown preset falls back to default", func(t *testing.T) {
		assert.Equal(t, Default(), GetPreset("neon"))
	})
}
