package assemble

import (
	"strings"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/reports"
)

// parseFamiliars builds one item per summoned familiar. Every familiar
// leaves an audit entry in the log, matched or not, so health and attack
// math stays checkable against the raw data.
func (h *heroAssembly) parseFamiliars(list []any, parent game.Record) []*game.SkillItem {
	if len(list) == 0 {
		return nil
	}
	maxLevel := int(parent.NumOr("maxLevel", 8))

	var items []*game.SkillItem
	for _, raw := range list {
		familiar, ok := game.AsRecord(raw)
		if !ok {
			continue
		}
		familiarID := familiar.Str("id")
		if familiarID == "" {
			continue
		}

		candidates := candidatesContaining(h.familiarCandidates, familiarID)
		if len(candidates) == 0 {
			candidates = h.familiarCandidates
		}
		templateID, found := h.matchTemplate(familiar, nil, candidates)
		if !found {
			items = append(items, &game.SkillItem{
				Kind:       game.KindFamiliar,
				ID:         familiarID,
				TemplateID: searchFailed,
				Text:       game.BilingualText{EN: "Failed for familiar " + familiarID},
				Failed:     true,
			})
			continue
		}

		params := map[string]any{}
		levels := float64(maxLevel - 1)

		health := familiar.NumOr("healthPerMil", 0)
		healthInc := familiar.NumOr("healthPerLevelPerMil", 0)
		params["FAMILIARHEALTHPERCENT"] = (health + healthInc*levels) / 10

		logEntry := reports.FamiliarLogEntry{
			HeroID:           h.heroID,
			FamiliarID:       familiarID,
			RawHealthPerMil:  engine.FormatValue(health),
			CalculatedHealth: engine.FormatValue(params["FAMILIARHEALTHPERCENT"]),
			RawAttackPerMil:  "NOT_FOUND",
		}
		// Attack lives on the first effect that carries it. Only parasites
		// scale attack per level.
		for _, rawEffect := range familiar.List("effects") {
			effect, isRecord := game.AsRecord(rawEffect)
			if !isRecord || !effect.Has("attackPercentPerMil") {
				continue
			}
			attack := effect.NumOr("attackPercentPerMil", 0)
			attackInc := 0.0
			if strings.Contains(strings.ToLower(familiar.Str("familiarType")), "parasite") {
				attackInc = effect.NumOr("attackPercentIncrementPerLevelPerMil", 0)
			}
			params["FAMILIARATTACK"] = (attack + attackInc*levels) / 10
			logEntry.RawAttackPerMil = engine.FormatValue(attack)
			logEntry.RawAttackIncrement = engine.FormatValue(attackInc)
			logEntry.CalculatedAttack = engine.FormatValue(params["FAMILIARATTACK"])
			break
		}
		h.diags.LogFamiliar(logEntry)

		entry, _ := h.table.Get(templateID)
		for _, placeholder := range engine.PlaceholderNames(entry.EN) {
			if _, done := params[placeholder]; done {
				continue
			}
			value, _ := h.resolveValue(placeholder, familiar, maxLevel, false, []string{"monster"})
			if value != nil {
				params[placeholder] = value
			}
		}

		text := h.renderText(templateID, params)
		text.EN = strings.TrimSpace(strings.ReplaceAll(text.EN, "[*]", "\n・"))
		text.JA = strings.TrimSpace(strings.ReplaceAll(text.JA, "[*]", "\n・"))

		item := &game.SkillItem{
			Kind:       game.KindFamiliar,
			ID:         familiarID,
			TemplateID: templateID,
			Params:     params,
			Text:       text,
		}
		if familiar.Has("effects") {
			item.Nested = h.parseFamiliarEffects(familiar)
		}
		scope := withMaxLevel(familiar, maxLevel)
		item.Extra = h.extraDescription([]string{"familiartype"}, familiar.Str("familiarType"), scope, params, maxLevel)
		items = append(items, item)
	}
	return items
}

// parseFamiliarEffects builds items for a familiar's own effect list. The
// search block merges the familiar under the effect so target and timing
// fields stay visible to the matcher and value search.
func (h *heroAssembly) parseFamiliarEffects(familiar game.Record) []*game.SkillItem {
	effects := familiar.List("effects")
	if len(effects) == 0 {
		return nil
	}
	familiarID := familiar.Str("id")

	var all []string
	all = append(all, candidatesContaining(h.familiarCandidates, familiarID)...)
	all = append(all, candidatesContaining(h.familiarStatusCandidates, familiarID)...)

	var items []*game.SkillItem
	for _, raw := range effects {
		effect, ok := game.AsRecord(raw)
		if !ok {
			continue
		}
		effectID := effect.Str("id")
		if effectID == "" {
			continue
		}
		block := mergeRecords(familiar, effect)
		effectType := effect.Str("effectType")

		var primary []string
		for _, id := range all {
			if (effectType != "" && strings.Contains(id, effectType)) || strings.Contains(id, effectID) {
				primary = append(primary, id)
			}
		}
		candidates := primary
		if len(candidates) == 0 {
			candidates = all
		}
		templateID, found := h.matchTemplate(block, nil, candidates)
		if !found {
			items = append(items, &game.SkillItem{
				Kind:       game.KindFamiliarEffect,
				ID:         effectID,
				TemplateID: searchFailed,
				Params:     map[string]any{},
				Text:       game.BilingualText{EN: "Failed for familiar effect " + effectID},
				Failed:     true,
			})
			continue
		}

		params := map[string]any{}
		entry, _ := h.table.Get(templateID)
		names := engine.PlaceholderNames(entry.EN)
		for _, placeholder := range names {
			value, _ := h.resolveValue(placeholder, block, h.mainMax, false, nil)
			if value != nil {
				params[placeholder] = value
			}
		}
		// Frequency is described in whole turns including the acting turn,
		// one more than the gap the data stores.
		if familiar.Has("turnsBetweenNonDamageEffects") {
			for _, placeholder := range names {
				if placeholder == "FAMILIAREFFECTFREQUENCY" {
					params[placeholder] = familiar.NumOr("turnsBetweenNonDamageEffects", 0) + 1
				}
			}
		}

		item := &game.SkillItem{
			Kind:       game.KindFamiliarEffect,
			ID:         effectID,
			TemplateID: templateID,
			Params:     params,
			Text:       h.renderText(templateID, params),
		}
		scope := withMaxLevel(effect, h.mainMax)
		item.Extra = h.extraDescription([]string{"familiareffect"}, effectType, scope, params, h.mainMax)
		items = append(items, item)
	}
	return items
}
