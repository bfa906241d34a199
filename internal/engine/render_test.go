package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderNames(t *testing.T) {
	names := PlaceholderNames("Deal {DAMAGE} damage over {TURNS} turns ({DAMAGE} per hit)")
	assert.Equal(t, []string{"DAMAGE", "TURNS"}, names)

	assert.Empty(t, PlaceholderNames("No placeholders here"))
}

func TestRenderTemplate(t *testing.T) {
	t.Run("substitutes formatted params", func(t *testing.T) {
		out := RenderTemplate("Deal {HEALTH}% damage", map[string]any{"HEALTH": 150.0})
		assert.Equal(t, "Deal 150% damage", out)
	})

	t.Run("fractional values keep one decimal", func(t *testing.T) {
		out := RenderTemplate("Deal {HEALTH}% damage", map[string]any{"HEALTH": 150.25})
		assert.Equal(t, "Deal 150.3% damage", out)
	})

	t.Run("unresolved placeholders stay literal", func(t *testing.T) {
		out := RenderTemplate("Deal {DAMAGE} damage over {TURNS} turns", map[string]any{"TURNS": 3})
		assert.Equal(t, "Deal {DAMAGE} damage over 3 turns", out)
	})

	t.Run("string params pass through", func(t *testing.T) {
		out := RenderTemplate("Dispels {WHAT}", map[string]any{"WHAT": "all buffs"})
		assert.Equal(t, "Dispels all buffs", out)
	})
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want string
	}{
		{150.0, "150"},
		{150.25, "150.3"},
		{150.96, "151.0"},
		{-3.0, "-3"},
		{-4.25, "-4.3"},
		{7, "7"},
		{"x1", "x1"},
	} {
		assert.Equal(t, tc.want, FormatValue(tc.in), "FormatValue(%v)", tc.in)
	}
}
