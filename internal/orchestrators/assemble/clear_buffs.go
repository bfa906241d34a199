package assemble

import (
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// parseClearBuffs builds the dispel line for specials that strip buffs or
// debuffs before their main effect. Returns nil when the special has no
// buffToRemove key at all.
func (h *heroAssembly) parseClearBuffs(special game.Record) *game.SkillItem {
	if !special.Has("buffToRemove") {
		return nil
	}

	buffToRemove := strings.ToLower(special.Str("buffToRemove"))
	target := "all"
	if special.Has("buffToRemoveTargetType") {
		target = strings.ToLower(special.Str("buffToRemoveTargetType"))
	}

	// Dispelling debuffs helps allies, dispelling buffs hits enemies. The
	// explicit side fields only matter when the buff name tells us
	// nothing.
	side := ""
	if strings.Contains(buffToRemove, "debuff") {
		side = "allies"
	} else if strings.Contains(buffToRemove, "buff") {
		side = "enemies"
	}
	if side == "" {
		side = strings.ToLower(special.Str("buffToRemoveSideAffected"))
	}
	if side == "" {
		side = strings.ToLower(special.Str("sideAffected"))
	}
	if side == "" {
		side = strings.ToLower(special.Child("directEffect").Str("sideAffected"))
	}
	if side == "" {
		side = "enemies"
	}

	templateID := "specials.v2.clearbuffs." + buffToRemove + "." + target + "." + side
	if !h.table.Has(templateID) && h.table.Has(templateID+".latest") {
		templateID += ".latest"
	}

	return &game.SkillItem{
		Kind:       game.KindClearBuffs,
		ID:         "clear_buffs_effect",
		TemplateID: templateID,
		Params:     map[string]any{},
		Text:       h.renderText(templateID, nil),
	}
}
