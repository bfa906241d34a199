package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

func TestParseStatusEffects(t *testing.T) {
	t.Run("override rule wins and permil damage converts against max attack", func(t *testing.T) {
		table := tableOf(map[string]game.BilingualText{
			"specials.v2.statuseffect.burn.damage": {EN: "Deals {DAMAGE} damage over {TURNS} turns", JA: "{TURNS}ターンの間に{DAMAGE}ダメージ"},
		})
		overrides := game.NewOverrides()
		overrides.Text.Common["se-burn"] = "specials.v2.statuseffect.burn.damage"
		h := testHero(testAssembler(table, overrides))

		items := h.parseStatusEffects([]any{map[string]any{
			"id":           "se-burn",
			"statusEffect": "Burn",
			"turns":        3,
			"damagePerMil": 300,
		}}, game.Record{"maxLevel": 8})

		require.Len(t, items, 1)
		assert.Equal(t, "se-burn", items[0].ID)
		assert.Equal(t, "specials.v2.statuseffect.burn.damage", items[0].TemplateID)

		// 300 per mil is 30% of max attack per turn: floor(0.3*700) = 210,
		// times three turns because the template spans them.
		assert.Equal(t, float64(3), items[0].Params["TURNS"])
		assert.Equal(t, float64(630), items[0].Params["DAMAGE"])
		assert.Equal(t, "Deals 630 damage over 3 turns", items[0].Text.EN)
		assert.Equal(t, "3ターンの間に630ダメージ", items[0].Text.JA)
	})

	t.Run("hero specific override beats the common one", func(t *testing.T) {
		table := tableOf(map[string]game.BilingualText{
			"specials.v2.statuseffect.haste": {EN: "Speeds up allies", JA: "味方を加速"},
			"custom.override.id":             {EN: "Hand-picked text", JA: "手動指定"},
		})
		overrides := game.NewOverrides()
		overrides.Text.Common["se-special"] = "specials.v2.statuseffect.haste"
		overrides.Text.Hero["hero-zeline"] = map[string]string{"se-special": "custom.override.id"}
		h := testHero(testAssembler(table, overrides))

		items := h.parseStatusEffects([]any{map[string]any{"id": "se-special"}}, game.Record{})

		require.Len(t, items, 1)
		assert.Equal(t, "custom.override.id", items[0].TemplateID)
		assert.Equal(t, "Hand-picked text", items[0].Text.EN)
	})

	t.Run("fast path reads target and side from the parent special", func(t *testing.T) {
		table := tableOf(map[string]game.BilingualText{
			"specials.v2.statuseffect.minor.freeze.all.enemies": {EN: "Freezes all enemies for {TURNS} turns", JA: "敵全体を{TURNS}ターン凍結"},
		})
		h := testHero(testAssembler(table, nil))

		parent := game.Record{
			"maxLevel":         8,
			"statusTargetType": "All",
			"sideAffected":     "Enemies",
		}
		items := h.parseStatusEffects([]any{map[string]any{
			"id":           "se-frost",
			"buff":         "MinorDebuff",
			"statusEffect": "Freeze",
			"turns":        2,
		}}, parent)

		require.Len(t, items, 1)
		assert.Equal(t, "specials.v2.statuseffect.minor.freeze.all.enemies", items[0].TemplateID)
		assert.Equal(t, "Freezes all enemies for 2 turns", items[0].Text.EN)
		assert.Empty(t, h.diags.Warnings())
	})

	t.Run("unmatched block records the failure and a warning", func(t *testing.T) {
		table := tableOf(map[string]game.BilingualText{
			"specials.v2.statuseffect.burn.damage": {EN: "Deals {DAMAGE} damage", JA: "{DAMAGE}ダメージ"},
		})
		h := testHero(testAssembler(table, nil))

		items := h.parseStatusEffects([]any{map[string]any{
			"id":           "se-mystery",
			"statusEffect": "Vanish",
		}}, game.Record{})

		require.Len(t, items, 1)
		assert.Equal(t, searchFailed, items[0].TemplateID)
		assert.True(t, items[0].Failed)
		assert.Equal(t, "Failed for se-mystery", items[0].Text.EN)
		assert.Contains(t, h.diags.Warnings(), "Could not find lang_id for skill 'se-mystery' (type: Vanish)")
	})

	t.Run("nested effects recurse with the same parent and skip junk", func(t *testing.T) {
		table := tableOf(map[string]game.BilingualText{
			"specials.v2.statuseffect.haste": {EN: "Speeds up allies", JA: "味方を加速"},
			"specials.v2.statuseffect.slow":  {EN: "Slows enemies", JA: "敵を減速"},
		})
		overrides := game.NewOverrides()
		overrides.Text.Common["se-main"] = "specials.v2.statuseffect.haste"
		overrides.Text.Common["se-child"] = "specials.v2.statuseffect.slow"
		h := testHero(testAssembler(table, overrides))

		items := h.parseStatusEffects([]any{map[string]any{
			"id":           "se-main",
			"statusEffect": "Haste",
			"statusEffectsToAdd": []any{
				map[string]any{"id": "se-child", "statusEffect": "Slow"},
				"junk",
				map[string]any{"statusEffect": "no id, skipped"},
			},
		}}, game.Record{"maxLevel": 8})

		require.Len(t, items, 1)
		require.Len(t, items[0].Nested, 1)
		assert.Equal(t, "se-child", items[0].Nested[0].ID)
		assert.Equal(t, "specials.v2.statuseffect.slow", items[0].Nested[0].TemplateID)
	})

	t.Run("tooltip template attaches and inherits main params", func(t *testing.T) {
		table := tableOf(map[string]game.BilingualText{
			"specials.v2.statuseffect.burn.damage": {EN: "Deals {DAMAGE} damage over {TURNS} turns", JA: ""},
			"specials.v2.statuseffect.burn.extra":  {EN: "{DAMAGE} damage per tick[*]Does not stack", JA: ""},
		})
		overrides := game.NewOverrides()
		overrides.Text.Common["se-burn"] = "specials.v2.statuseffect.burn.damage"
		h := testHero(testAssembler(table, overrides))

		items := h.parseStatusEffects([]any{map[string]any{
			"id":           "se-burn",
			"statusEffect": "Burn",
			"turns":        3,
			"damagePerMil": 300,
		}}, game.Record{"maxLevel": 8})

		require.Len(t, items, 1)
		extra := items[0].Extra
		require.NotNil(t, extra)
		assert.Equal(t, game.KindTooltip, extra.Kind)
		assert.Equal(t, "specials.v2.statuseffect.burn.extra", extra.TemplateID)
		assert.Equal(t, float64(630), extra.Params["DAMAGE"])
		assert.Equal(t, "630 damage per tick\n・Does not stack", extra.Text.EN)
	})
}
