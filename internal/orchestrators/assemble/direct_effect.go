package assemble

import (
	"math"
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// placeholderByEffectType maps a direct effect type to the placeholder its
// templates expect. Unknown types fall back to VALUE.
var placeholderByEffectType = map[string]string{
	"Damage":      "HEALTH",
	"Heal":        "HEALTH",
	"HealthBoost": "HEALTHBOOST",
	"AddMana":     "MANA",
}

// parseDirectEffect builds the special's primary effect line. The template
// id is assembled from the effect's own fields rather than searched, so a
// missing piece shows up as a NO_TEMPLATE_FOR_ marker in the output.
func (h *heroAssembly) parseDirectEffect(special game.Record) *game.SkillItem {
	effect := special.Child("directEffect")
	effectType := effect.Str("effectType")
	if len(effect) == 0 || effectType == "" {
		return &game.SkillItem{
			Kind:       game.KindDirectEffect,
			ID:         "direct_effect_no_type",
			TemplateID: "N/A",
			Params:     map[string]any{},
		}
	}

	base := effect.NumOr("powerMultiplierPerMil", 0)
	increment := effect.NumOr("powerMultiplierIncrementPerLevelPerMil", 0)

	parts := []string{"specials.v2.directeffect", strings.ToLower(effectType)}
	if target := effect.Str("typeOfTarget"); target != "" {
		parts = append(parts, strings.ToLower(target))
	}
	if side := effect.Str("sideAffected"); side != "" {
		parts = append(parts, strings.ToLower(side))
	}
	if effectType == "AddMana" {
		if base > 0 {
			parts = append(parts, "increment")
		} else if base < 0 {
			parts = append(parts, "decrement")
		}
	}
	fixedPower := truthy(effect["hasFixedPower"])
	if fixedPower {
		parts = append(parts, "fixedpower")
	}
	templateID := strings.Join(parts, ".")

	maxLevel := int(special.NumOr("maxLevel", float64(h.mainMax)))
	total := base + increment*float64(maxLevel-1)

	placeholder, ok := placeholderByEffectType[effectType]
	if !ok {
		placeholder = "VALUE"
	}
	params := map[string]any{}
	switch {
	case base > 0 || increment > 0:
		switch {
		case fixedPower:
			params[placeholder] = math.Round(total)
		case effectType == "AddMana":
			params[placeholder] = math.Round(total / 100)
		default:
			params[placeholder] = math.Round(total / 10)
		}
	case base < 0 || increment < 0:
		params[placeholder] = math.Abs(math.Round(total / 100))
	}

	return &game.SkillItem{
		Kind:       game.KindDirectEffect,
		TemplateID: templateID,
		Params:     params,
		Text:       h.renderText(templateID, params),
	}
}
