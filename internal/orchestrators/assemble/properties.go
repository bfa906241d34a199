package assemble

import (
	"fmt"
	"strings"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// containerTypes maps a hero's mana speed to the property type that marks
// its special as multi-stage. Only that exact pairing turns a property
// into a container.
var containerTypes = map[string]string{
	"changing_tides": "RotatingSpecial",
	"charge_ninja":   "ChargedSpecial",
	"charge_magic":   "ChargedSpecial",
}

// containerTemplates holds the fixed template id for each container kind.
var containerTemplates = map[string]string{
	"changing_tides": "specials.v2.property.evolving_special",
	"charge_ninja":   "specials.v2.property.chargedspecial.3",
	"charge_magic":   "specials.v2.property.chargedspecial.2",
}

// containerHeadings labels each stage of a container special. Stages past
// the listed headings fall back to a plain level label.
var containerHeadings = map[string][]game.BilingualText{
	"changing_tides": {
		{EN: "1st:", JA: "第1:"},
		{EN: "2nd:", JA: "第2:"},
	},
	"charge_ninja": {
		{EN: "x1 Mana Charge:", JA: "x1マナチャージ:"},
		{EN: "x2 Mana Charge:", JA: "x2マナチャージ:"},
		{EN: "x3 Mana Charge:", JA: "x3マナチャージ:"},
	},
	"charge_magic": {
		{EN: "x1 Mana Charge:", JA: "x1マナチャージ:"},
		{EN: "x2 Mana Charge:", JA: "x2マナチャージ:"},
	},
}

// parseProperties builds one item per special property. Entries may be
// inline dicts or string ids into the property catalog; string ids with no
// catalog entry are skipped.
func (h *heroAssembly) parseProperties(list []any, parent game.Record) []*game.SkillItem {
	if len(list) == 0 {
		return nil
	}
	maxLevel := int(parent.NumOr("maxLevel", 8))

	var items []*game.SkillItem
	for _, raw := range list {
		var prop game.Record
		var propID string
		switch element := raw.(type) {
		case string:
			propID = element
			prop = h.specialProps[element]
		default:
			if rec, ok := game.AsRecord(raw); ok {
				prop = rec
				propID = rec.Str("id")
			}
		}
		if len(prop) == 0 || propID == "" {
			continue
		}

		propertyType := prop.Str("propertyType")
		if want, ok := containerTypes[h.manaSpeedID]; ok && propertyType == want {
			items = append(items, h.parseContainer(propID, prop))
			continue
		}

		templateID, found := h.overrides.Text.Lookup(h.heroID, propID)
		if !found {
			templateID, found = h.matchTemplate(prop, parent, h.propertyCandidates)
		}
		if !found {
			items = append(items, &game.SkillItem{
				Kind:       game.KindProperty,
				ID:         propID,
				TemplateID: searchFailed,
				Params:     map[string]any{},
				Text:       game.BilingualText{EN: "Failed for " + propID},
				Failed:     true,
			})
			continue
		}

		params := map[string]any{}
		scope := withMaxLevel(prop, maxLevel)
		entry, _ := h.table.Get(templateID)
		isModifier := strings.Contains(strings.ToLower(propertyType), "modifier")
		for _, placeholder := range engine.PlaceholderNames(entry.EN) {
			value, _ := h.resolveValue(placeholder, scope, maxLevel, isModifier, nil)
			if value != nil {
				params[placeholder] = value
			}
		}

		item := &game.SkillItem{
			Kind:       game.KindProperty,
			ID:         propID,
			TemplateID: templateID,
			Params:     params,
			Text:       h.renderText(templateID, params),
		}
		if prop.Has("statusEffects") {
			item.Nested = h.parseStatusEffects(prop.List("statusEffects"), parent)
		}
		item.Extra = h.extraDescription([]string{"specialproperty", "property"}, propertyType, scope, params, maxLevel)
		items = append(items, item)
	}
	return items
}

// parseContainer expands a multi-stage special into a fixed container line
// with one heading plus parsed effects per stage. Stage indexes count
// skipped entries so headings stay aligned with the game data.
func (h *heroAssembly) parseContainer(propID string, prop game.Record) *game.SkillItem {
	templateID := containerTemplates[h.manaSpeedID]
	headings := containerHeadings[h.manaSpeedID]

	var nested []*game.SkillItem
	for i, raw := range prop.List("specialIds") {
		sub, ok := game.AsRecord(raw)
		if !ok || len(sub) == 0 {
			continue
		}
		heading := game.BilingualText{
			EN: fmt.Sprintf("Level %d:", i+1),
			JA: fmt.Sprintf("レベル %d:", i+1),
		}
		if i < len(headings) {
			heading = headings[i]
		}
		nested = append(nested, &game.SkillItem{
			Kind: game.KindHeading,
			ID:   "heading",
			Text: heading,
		})
		if sub.Has("directEffect") {
			nested = append(nested, h.parseDirectEffect(sub))
		}
		if sub.Has("properties") {
			nested = append(nested, h.parseProperties(sub.List("properties"), sub)...)
		}
		if sub.Has("statusEffects") {
			nested = append(nested, h.parseStatusEffects(sub.List("statusEffects"), sub)...)
		}
	}

	return &game.SkillItem{
		Kind:       game.KindContainer,
		ID:         propID,
		TemplateID: templateID,
		Params:     map[string]any{},
		Text:       h.renderText(templateID, nil),
		Nested:     nested,
	}
}
