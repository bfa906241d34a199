package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

func TestBestTemplateID_FastPath(t *testing.T) {
	candidates := []string{
		"specials.v2.statuseffect.major.poison.enemies.single",
		"specials.v2.statuseffect.minor.poison.enemies.all",
	}

	t.Run("constructs the id from block fields", func(t *testing.T) {
		id, warning := BestTemplateID(MatchInput{
			Block: game.Record{
				"statusEffect":     "Poison",
				"buff":             "MajorDebuff",
				"statusTargetType": "Enemies",
				"sideAffected":     "Single",
			},
			Candidates: candidates,
		})
		assert.Empty(t, warning)
		assert.Equal(t, "specials.v2.statuseffect.major.poison.enemies.single", id)
	})

	t.Run("target and side come from the parent scope", func(t *testing.T) {
		id, _ := BestTemplateID(MatchInput{
			Block: game.Record{
				"statusEffect":     "Poison",
				"buff":             "MinorDebuff",
				"statusTargetType": "Self",
				"sideAffected":     "Own",
			},
			Parent: game.Record{
				"statusTargetType": "Enemies",
				"sideAffected":     "All",
			},
			Candidates: candidates,
		})
		assert.Equal(t, "specials.v2.statuseffect.minor.poison.enemies.all", id)
	})

	t.Run("falls through to scoring when the id is not a candidate", func(t *testing.T) {
		id, _ := BestTemplateID(MatchInput{
			Block: game.Record{
				"statusEffect":     "Burn",
				"buff":             "MajorDebuff",
				"statusTargetType": "Enemies",
				"sideAffected":     "Single",
			},
			Candidates: []string{"specials.v2.statuseffect.burn.generic"},
		})
		assert.Equal(t, "specials.v2.statuseffect.burn.generic", id)
	})
}

func TestBestTemplateID_KeywordScoring(t *testing.T) {
	t.Run("shallow keywords outweigh nested ones", func(t *testing.T) {
		id, warning := BestTemplateID(MatchInput{
			Block: game.Record{
				"effectType": "Damage",
				"statusEffects": []any{
					game.Record{"statusEffect": "Burn"},
				},
			},
			Candidates: []string{
				"specials.v2.directeffect.damage.target.enemies",
				"specials.v2.statuseffect.minor.burn.enemies.single",
			},
		})
		require.Empty(t, warning)
		assert.Equal(t, "specials.v2.directeffect.damage.target.enemies", id)
	})

	t.Run("nested keywords only reach through known list fields", func(t *testing.T) {
		_, warning := BestTemplateID(MatchInput{
			Block: game.Record{
				"unknownList": []any{
					game.Record{"statusEffect": "Burn"},
				},
			},
			Candidates: []string{"specials.v2.statuseffect.minor.burn.enemies.single"},
		})
		assert.NotEmpty(t, warning, "keywords behind unknown list fields must not score")
	})

	t.Run("minion familiars prefer ally-side templates", func(t *testing.T) {
		id, _ := BestTemplateID(MatchInput{
			Block: game.Record{
				"familiarType": "FireMinion",
				"effectType":   "Heal",
			},
			Candidates: []string{
				"specials.v2.familiar.heal.enemies",
				"specials.v2.familiar.heal.allies",
			},
		})
		assert.Equal(t, "specials.v2.familiar.heal.allies", id)
	})

	t.Run("negative fields favor decrement variants", func(t *testing.T) {
		id, _ := BestTemplateID(MatchInput{
			Block: game.Record{
				"effectType":  "AddMana",
				"powerPerMil": -200.0,
			},
			Candidates: []string{
				"specials.v2.directeffect.addmana.increment",
				"specials.v2.directeffect.addmana.decrement",
			},
		})
		assert.Equal(t, "specials.v2.directeffect.addmana.decrement", id)
	})

	t.Run("ties break on shorter id", func(t *testing.T) {
		id, _ := BestTemplateID(MatchInput{
			Block: game.Record{"effectType": "Damage"},
			Candidates: []string{
				"specials.v2.damage.all.enemies.extended",
				"specials.v2.damage.all",
			},
		})
		assert.Equal(t, "specials.v2.damage.all", id)
	})

	t.Run("no scoring candidate reports the block identity", func(t *testing.T) {
		id, warning := BestTemplateID(MatchInput{
			Block:      game.Record{"id": "prop-9", "propertyType": "WaterDamage"},
			Candidates: []string{"specials.v2.something.else"},
		})
		assert.Empty(t, id)
		assert.Contains(t, warning, "prop-9")
		assert.Contains(t, warning, "WaterDamage")
	})

	t.Run("unknown block reports placeholder identity", func(t *testing.T) {
		_, warning := BestTemplateID(MatchInput{
			Block:      game.Record{},
			Candidates: nil,
		})
		assert.Contains(t, warning, "UNKNOWN")
		assert.Contains(t, warning, "N/A")
	})
}
