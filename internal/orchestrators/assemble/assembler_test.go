package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

type stubStats map[string]game.HeroStats

func (s stubStats) HeroStats(heroID string) game.HeroStats {
	if heroStats, ok := s[heroID]; ok {
		return heroStats
	}
	return game.HeroStats{Name: "N/A"}
}

func tableOf(entries map[string]game.BilingualText) *game.StringTable {
	table := game.NewStringTable()
	for id, text := range entries {
		table.Set(id, game.Languages[0], text.EN)
		table.Set(id, game.Languages[1], text.JA)
	}
	return table
}

func testAssembler(table *game.StringTable, overrides *game.Overrides) *assembler {
	if overrides == nil {
		overrides = game.NewOverrides()
	}
	return newAssembler(table, overrides, stubStats{
		"hero-zeline": {Name: "Zeline", MaxAttack: 700},
	}, game.Catalog{}, map[string]bool{})
}

func testHero(asm *assembler) *heroAssembly {
	return &heroAssembly{
		assembler: asm,
		heroID:    "hero-zeline",
		heroName:  "Zeline",
		maxAttack: 700,
		mainMax:   8,
	}
}

func TestAssembleHero(t *testing.T) {
	table := tableOf(map[string]game.BilingualText{
		"specials.v2.directeffect.damage":         {EN: "Deal {HEALTH}% damage", JA: "{HEALTH}%のダメージ"},
		"specials.v2.clearbuffs.buff.all.enemies": {EN: "Dispels buffs from all enemies", JA: "敵全体のバフを解除"},
	})
	asm := testAssembler(table, nil)

	tree := game.HeroTree{HeroID: "hero-zeline", Root: game.Record{
		"id":          "hero-zeline",
		"manaSpeedId": "standard",
		"specialId_details": map[string]any{
			"id":               "special-frost",
			"maxLevel":         8,
			"removeBuffsFirst": true,
			"buffToRemove":     "Buff",
			"directEffect": map[string]any{
				"effectType":                             "Damage",
				"powerMultiplierPerMil":                  1200,
				"powerMultiplierIncrementPerLevelPerMil": 50,
			},
		},
	}}

	skills := asm.assembleHero(tree)

	assert.Equal(t, "hero-zeline", skills.HeroID)
	assert.Equal(t, "Zeline", skills.HeroName)

	require.NotNil(t, skills.DirectEffect)
	assert.Equal(t, "specials.v2.directeffect.damage", skills.DirectEffect.TemplateID)
	assert.Equal(t, float64(155), skills.DirectEffect.Params["HEALTH"])

	require.NotNil(t, skills.ClearBuffs)
	assert.Equal(t, "specials.v2.clearbuffs.buff.all.enemies", skills.ClearBuffs.TemplateID)

	// removeBuffsFirst puts the dispel line before the main effect.
	assert.True(t, skills.RemoveBuffsFirst)
	assert.Equal(t, "・Dispels buffs from all enemies\n・Deal 155% damage", skills.SpecialText.EN)
	assert.Equal(t, "・敵全体のバフを解除\n・155%のダメージ", skills.SpecialText.JA)
	assert.Equal(t, []string{
		"specials.v2.clearbuffs.buff.all.enemies",
		"specials.v2.directeffect.damage",
	}, skills.SpecialKeys)

	assert.Empty(t, skills.PassiveText.EN)
	assert.Empty(t, skills.PassiveKeys)
}

func TestAssembleHeroWithoutSpecial(t *testing.T) {
	asm := testAssembler(tableOf(nil), nil)

	skills := asm.assembleHero(game.HeroTree{HeroID: "hero-aife", Root: game.Record{"id": "hero-aife"}})

	assert.Equal(t, "N/A", skills.HeroName)
	assert.Nil(t, skills.DirectEffect)
	assert.Nil(t, skills.ClearBuffs)
	assert.Empty(t, skills.Properties)
	assert.Empty(t, skills.SpecialText.EN)
	assert.Empty(t, skills.SpecialKeys)
}

func TestAssembleHeroCostumePassives(t *testing.T) {
	table := tableOf(map[string]game.BilingualText{
		"herocard.passive_skill.title.revive":       {EN: "Revive", JA: "復活"},
		"herocard.passive_skill.description.revive": {EN: "Revives once per battle", JA: "戦闘ごとに一度復活"},
	})
	asm := testAssembler(table, nil)

	tree := game.HeroTree{HeroID: "hero-zeline", Root: game.Record{
		"id": "hero-zeline",
		"passiveSkills": []any{
			map[string]any{"id": "pass-base", "passiveSkillType": "Revive"},
		},
		"costumeBonusesId_details": map[string]any{
			"id": "costume-1",
			"passiveSkills": []any{
				map[string]any{"id": "pass-costume", "passiveSkillType": "Revive"},
			},
		},
	}}

	skills := asm.assembleHero(tree)

	// Costume passives are appended after the hero's own.
	require.Len(t, skills.Passives, 2)
	assert.Equal(t, "pass-base", skills.Passives[0].ID)
	assert.Equal(t, "pass-costume", skills.Passives[1].ID)
	assert.Contains(t, skills.PassiveText.EN, "--- Passives ---")
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy(true))
	assert.True(t, truthy(1))
	assert.True(t, truthy(float64(2)))
	assert.True(t, truthy("yes"))

	assert.False(t, truthy(false))
	assert.False(t, truthy(0))
	assert.False(t, truthy(""))
	assert.False(t, truthy(nil))
}
