package assemble

import (
	"math"
	"strings"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
)

const (
	passiveTitlePrefix = "herocard.passive_skill.title."
	passiveDescPrefix  = "herocard.passive_skill.description."
)

// parsePassives builds title plus description for each passive skill.
// Passives resolve against the card templates, not the specials table, and
// a hero card needs both halves before anything renders.
func (h *heroAssembly) parsePassives(list []any) []*game.SkillItem {
	if len(list) == 0 {
		return nil
	}

	var items []*game.SkillItem
	for _, raw := range list {
		skill, ok := game.AsRecord(raw)
		if !ok {
			continue
		}
		skillID := skill.Str("id")
		skillType := strings.ToLower(skill.Str("passiveSkillType"))
		if skillID == "" || skillType == "" {
			continue
		}

		titleID := h.passiveTitleID(skill, skillType)
		descID := ""
		if titleID != "" {
			descID = h.passiveDescID(skill, skillType, titleID)
		}
		if titleID == "" || descID == "" {
			h.diags.Warn("Could not resolve passive lang_ids for skill '" + skillID + "'")
			items = append(items, &game.SkillItem{
				Kind:   game.KindPassive,
				ID:     skillID,
				Title:  &game.BilingualText{EN: "FAILED: " + skillID},
				Text:   game.BilingualText{EN: "lang_id resolution failed."},
				Failed: true,
			})
			continue
		}

		titleEntry, _ := h.table.Get(titleID)
		descEntry, _ := h.table.Get(descID)
		scope := withMaxLevel(skill, h.mainMax)
		params := map[string]any{}
		for _, placeholder := range engine.PlaceholderNames(titleEntry.EN + descEntry.EN) {
			value, source := h.resolveValue(placeholder, scope, h.mainMax, false, nil)
			if value == nil {
				continue
			}
			if strings.EqualFold(placeholder, "DAMAGE") && strings.Contains(strings.ToLower(source), "permil") {
				if n, numeric := game.AsNumber(value); numeric {
					value = math.Floor(n / 100 * float64(h.maxAttack))
				}
			}
			params[placeholder] = value
		}

		items = append(items, &game.SkillItem{
			Kind:       game.KindPassive,
			ID:         skillID,
			TemplateID: titleID,
			Params:     params,
			Title: &game.BilingualText{
				EN: engine.RenderTemplate(titleEntry.EN, params),
				JA: engine.RenderTemplate(titleEntry.JA, params),
			},
			Text: game.BilingualText{
				EN: engine.RenderTemplate(descEntry.EN, params),
				JA: engine.RenderTemplate(descEntry.JA, params),
			},
		})
	}
	return items
}

// passiveTitleID scores every title template under the skill type's prefix
// by how many of the skill's keywords appear as full id segments. Ties go
// to the shorter id, then the lexicographically smaller one.
func (h *heroAssembly) passiveTitleID(skill game.Record, skillType string) string {
	candidates := h.table.KeysWithPrefix(passiveTitlePrefix + skillType)
	if len(candidates) == 0 {
		return ""
	}
	keywords := engine.CollectKeywords(skill)

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		score := segmentHits(candidate, keywords)
		if score > bestScore || (score == bestScore && len(candidate) < len(best)) {
			best = candidate
			bestScore = score
		}
	}
	return best
}

// passiveDescID pairs a description with the chosen title. The direct
// .title. to .description. swap wins when the table has it; otherwise the
// keyword-bearing candidates are searched, shortest first.
func (h *heroAssembly) passiveDescID(skill game.Record, skillType, titleID string) string {
	ideal := strings.Replace(titleID, ".title.", ".description.", 1)
	if h.table.Has(ideal) {
		return ideal
	}

	candidates := h.table.KeysWithPrefix(passiveDescPrefix + skillType)
	if len(candidates) == 0 {
		return ""
	}
	keywords := engine.CollectKeywords(skill)

	var refined []string
	for _, candidate := range candidates {
		if segmentHits(candidate, keywords) > 0 {
			refined = append(refined, candidate)
		}
	}
	if len(refined) > 0 {
		return shortest(refined)
	}
	return shortest(candidates)
}

// segmentHits counts the keywords that appear as whole dot-separated
// segments of the template id.
func segmentHits(templateID string, keywords map[string]float64) int {
	segments := make(map[string]bool)
	for _, seg := range strings.Split(templateID, ".") {
		segments[seg] = true
	}
	hits := 0
	for kw := range keywords {
		if segments[kw] {
			hits++
		}
	}
	return hits
}

// shortest returns the shortest id, keeping the first seen on ties so a
// sorted input yields the lexicographically smallest.
func shortest(ids []string) string {
	best := ids[0]
	for _, id := range ids[1:] {
		if len(id) < len(best) {
			best = id
		}
	}
	return best
}
