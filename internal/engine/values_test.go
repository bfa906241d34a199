package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

func TestFlatten(t *testing.T) {
	rec := game.Record{
		"directEffect": game.Record{"powerPerMil": 500.0},
		"statusEffects": []any{
			game.Record{"turns": 3.0},
		},
		"name": "Fireball",
	}

	leaves := Flatten(rec)

	paths := make(map[string]any, len(leaves))
	for _, leaf := range leaves {
		paths[leaf.Path] = leaf.Value
	}
	assert.Equal(t, 500.0, paths["directEffect.powerPerMil"])
	assert.Equal(t, 3.0, paths["statusEffects.0.turns"])
	assert.Equal(t, "Fireball", paths["name"])
}

func TestResolveValue_Heuristic(t *testing.T) {
	t.Run("permil with per-level increment", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "X",
			Scope:       game.Record{"xPerMil": 1200.0, "xPerLevelPerMil": 50.0},
			MaxLevel:    8,
		})
		assert.Equal(t, 155.0, value)
	})

	t.Run("modifier offsets from 1000", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "X",
			Scope:       game.Record{"xModifierPerMil": 1300.0},
			MaxLevel:    1,
			IsModifier:  true,
		})
		assert.Equal(t, 30.0, value)
	})

	t.Run("modifier inferred from key name", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "X",
			Scope:       game.Record{"xModifierPerMil": 1300.0},
			MaxLevel:    1,
		})
		assert.Equal(t, 30.0, value)
	})

	t.Run("plain numeric rounds to int", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "TURNS",
			Scope:       game.Record{"turns": 3.0},
			MaxLevel:    5,
		})
		assert.Equal(t, 3, value)
	})

	t.Run("shortest key wins ties", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "Health",
			Scope: game.Record{
				"healthPerMil":        800.0,
				"healthSpecialPerMil": 900.0,
			},
			MaxLevel: 1,
		})
		assert.Equal(t, 80.0, value)
	})

	t.Run("ignored substrings drop leaves", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "Attack",
			Scope:       game.Record{"monsterAttack": 999.0, "attack": 70.0},
			MaxLevel:    1,
			IgnoreKeys:  []string{"monster"},
		})
		assert.Equal(t, 70, value)
	})

	t.Run("increment inserted before trailing segment", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "AttackBonus",
			Scope: game.Record{
				"attackBonus":                  10.0,
				"attackIncrementPerLevelBonus": 2.0,
			},
			MaxLevel: 3,
		})
		assert.Equal(t, 14, value)
	})

	t.Run("booleans are not numeric leaves", func(t *testing.T) {
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "Fixed",
			Scope:       game.Record{"hasFixedPower": true},
			MaxLevel:    1,
		})
		assert.Nil(t, value)
	})

	t.Run("no match yields absent without diagnostic", func(t *testing.T) {
		value, diag := ResolveValue(ResolveValueInput{
			Placeholder: "MANA",
			Scope:       game.Record{"turns": 3.0},
			MaxLevel:    1,
		})
		assert.Nil(t, value)
		assert.Empty(t, diag)
	})
}

func TestResolveValue_OverrideRules(t *testing.T) {
	newRules := func() *game.ValueOverrides {
		o := game.NewOverrides()
		return &o.Values
	}

	t.Run("fixed parses int then float then raw string", func(t *testing.T) {
		for _, tc := range []struct {
			raw  string
			want any
		}{
			{"42", 42},
			{"4.5", 4.5},
			{"all enemies", "all enemies"},
		} {
			rules := newRules()
			rules.Common["DAMAGE"] = game.ValueRule{Calc: "fixed", Value: tc.raw}
			value, _ := ResolveValue(ResolveValueInput{
				Placeholder: "DAMAGE",
				Scope:       game.Record{},
				MaxLevel:    1,
				Rules:       rules,
			})
			assert.Equal(t, tc.want, value)
		}
	})

	t.Run("hero rule beats common rule and heuristics", func(t *testing.T) {
		rules := newRules()
		rules.Common["X"] = game.ValueRule{Calc: "fixed", Value: "1"}
		rules.Hero["hero-1"] = map[string]game.ValueRule{
			"X": {Calc: "fixed", Value: "2"},
		}
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "x",
			Scope:       game.Record{"xPerMil": 5000.0},
			MaxLevel:    1,
			HeroID:      "hero-1",
			Rules:       rules,
		})
		assert.Equal(t, 2, value)
	})

	t.Run("key rule does a suffix match", func(t *testing.T) {
		rules := newRules()
		rules.Common["DAMAGE"] = game.ValueRule{Calc: "permil", Key: "powerPerMil"}
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "DAMAGE",
			Scope:       game.Record{"directEffect": game.Record{"powerPerMil": 250.0}},
			MaxLevel:    1,
			Rules:       rules,
		})
		assert.Equal(t, 25.0, value)
	})

	t.Run("key rule without permil truncates to int", func(t *testing.T) {
		rules := newRules()
		rules.Common["TURNS"] = game.ValueRule{Key: "turns"}
		value, _ := ResolveValue(ResolveValueInput{
			Placeholder: "TURNS",
			Scope:       game.Record{"turns": 2.9},
			MaxLevel:    1,
			Rules:       rules,
		})
		assert.Equal(t, 2, value)
	})

	t.Run("ambiguous key rule fails without heuristic fallback", func(t *testing.T) {
		rules := newRules()
		rules.Common["X"] = game.ValueRule{Key: "PerMil"}
		value, diag := ResolveValue(ResolveValueInput{
			Placeholder: "X",
			Scope:       game.Record{"xPerMil": 100.0, "yPerMil": 200.0},
			MaxLevel:    1,
			Rules:       rules,
		})
		assert.Nil(t, value)
		assert.Contains(t, diag, "not found or ambiguous")
	})

	t.Run("missing key rule fails even when heuristics would match", func(t *testing.T) {
		rules := newRules()
		rules.Common["X"] = game.ValueRule{Key: "nonexistentKey"}
		value, diag := ResolveValue(ResolveValueInput{
			Placeholder: "X",
			Scope:       game.Record{"xPerMil": 100.0},
			MaxLevel:    1,
			Rules:       rules,
		})
		require.Nil(t, value)
		assert.Contains(t, diag, "nonexistentKey")
	})
}

func TestPlaceholderFragments(t *testing.T) {
	assert.Equal(t, []string{"attack", "bonus"}, placeholderFragments("AttackBonus"))
	assert.Equal(t, []string{"turns"}, placeholderFragments("turns"))
	// ALL-CAPS names split into single letters, matching the curated rules.
	assert.Equal(t, []string{"t", "u", "r", "n", "s"}, placeholderFragments("TURNS"))
}
