package assemble

import (
	"math"
	"strings"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// parseStatusEffects builds one item per status effect block. parent is the
// special the effects hang off; nested statusEffectsToAdd lists recurse
// with the same parent so target and side keep resolving from the special.
func (h *heroAssembly) parseStatusEffects(list []any, parent game.Record) []*game.SkillItem {
	if len(list) == 0 {
		return nil
	}
	maxLevel := int(parent.NumOr("maxLevel", 8))

	var items []*game.SkillItem
	for _, raw := range list {
		effect, ok := game.AsRecord(raw)
		if !ok {
			continue
		}
		effectID := effect.Str("id")
		if effectID == "" {
			continue
		}

		templateID, found := h.overrides.Text.Lookup(h.heroID, effectID)
		if !found {
			templateID, found = h.matchTemplate(effect, parent, h.statusCandidates)
		}
		if !found {
			items = append(items, &game.SkillItem{
				Kind:       game.KindStatusEffect,
				ID:         effectID,
				TemplateID: searchFailed,
				Params:     map[string]any{},
				Text:       game.BilingualText{EN: "Failed for " + effectID},
				Failed:     true,
			})
			continue
		}

		params := map[string]any{}
		scope := withMaxLevel(effect, maxLevel)
		turns := effect.NumOr("turns", 0)
		if turns > 0 {
			params["TURNS"] = turns
		}

		entry, _ := h.table.Get(templateID)
		isModifier := strings.Contains(strings.ToLower(effect.Str("statusEffect")), "modifier")
		for _, placeholder := range engine.PlaceholderNames(entry.EN) {
			if _, done := params[placeholder]; done {
				continue
			}
			value, source := h.resolveValue(placeholder, scope, maxLevel, isModifier, nil)
			if value == nil {
				continue
			}
			if strings.EqualFold(placeholder, "DAMAGE") && strings.Contains(strings.ToLower(source), "permil") {
				params[placeholder] = h.damageFromPermil(value, turns, entry.EN)
				continue
			}
			params[placeholder] = value
		}

		item := &game.SkillItem{
			Kind:       game.KindStatusEffect,
			ID:         effectID,
			TemplateID: templateID,
			Params:     params,
			Text:       h.renderText(templateID, params),
		}
		if effect.Has("statusEffectsToAdd") {
			item.Nested = h.parseStatusEffects(effect.List("statusEffectsToAdd"), parent)
		}
		item.Extra = h.extraDescription([]string{"statuseffect"}, effect.Str("statusEffect"), scope, params, maxLevel)
		items = append(items, item)
	}
	return items
}

// damageFromPermil converts a permil-derived damage value into flat damage
// against the hero's max attack. Damage-over-time templates get the full
// amount across all ticks.
func (h *heroAssembly) damageFromPermil(value any, turns float64, template string) any {
	n, ok := game.AsNumber(value)
	if !ok {
		return value
	}
	perTurn := math.Floor(n / 100 * float64(h.maxAttack))
	if strings.Contains(template, "over {TURNS} turns") {
		if turns == 0 {
			turns = 1
		}
		return perTurn * turns
	}
	return perTurn
}
