package assemble

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// compose renders the assembled items into the hero's final description
// strings, the template key trails behind them, and the tooltip list.
func compose(skills *game.HeroSkills) {
	sections := sectionOrder(skills)
	for _, tag := range game.Languages {
		skills.SpecialText.Set(tag, composeSpecial(sections, tag))
		skills.PassiveText.Set(tag, composePassives(skills.Passives, tag))
	}
	skills.SpecialKeys = templateTrail(sections, false)
	skills.PassiveKeys = templateTrail(skills.Passives, true)
	skills.Tooltips = collectTooltips(sections, skills.Passives)
}

// sectionOrder flattens the special's categories into display order. A
// special flagged removeBuffsFirst shows its dispel line before the main
// effect instead of after it.
func sectionOrder(skills *game.HeroSkills) []*game.SkillItem {
	var items []*game.SkillItem
	if skills.RemoveBuffsFirst && skills.ClearBuffs != nil {
		items = append(items, skills.ClearBuffs)
	}
	if skills.DirectEffect != nil {
		items = append(items, skills.DirectEffect)
	}
	if !skills.RemoveBuffsFirst && skills.ClearBuffs != nil {
		items = append(items, skills.ClearBuffs)
	}
	items = append(items, skills.Properties...)
	items = append(items, skills.StatusEffects...)
	items = append(items, skills.Familiars...)
	return items
}

// displayOrder returns items as rendered. Passive skills display in
// reverse definition order.
func displayOrder(items []*game.SkillItem, reverse bool) []*game.SkillItem {
	if !reverse {
		return items
	}
	out := make([]*game.SkillItem, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

func composeSpecial(sections []*game.SkillItem, tag language.Tag) string {
	var lines []string
	appendItems(&lines, sections, false, tag)
	return joinLines(lines)
}

func composePassives(passives []*game.SkillItem, tag language.Tag) string {
	if len(passives) == 0 {
		return ""
	}
	lines := []string{"\n--- Passives ---"}
	appendItems(&lines, passives, true, tag)
	return joinLines(lines)
}

func appendItems(lines *[]string, items []*game.SkillItem, isPassive bool, tag language.Tag) {
	for _, item := range displayOrder(items, isPassive) {
		if item == nil {
			continue
		}
		title := ""
		if isPassive && item.Title != nil {
			title = strings.TrimSpace(item.Title.Get(tag))
			if title != "" {
				*lines = append(*lines, "\n- "+title+" -")
			}
		}
		description := strings.TrimSpace(item.Text.Get(tag))
		switch {
		case item.Kind == game.KindHeading:
			// Headings keep their blank line even when empty so stages
			// stay visually separated.
			*lines = append(*lines, "\n"+description)
		case description != "":
			prefix := "・"
			if isPassive && title != "" {
				prefix = ""
			}
			*lines = append(*lines, prefix+description)
		}
		if len(item.Nested) > 0 {
			appendItems(lines, item.Nested, false, tag)
		}
	}
}

// templateTrail collects the distinct template ids behind a rendered
// section, in display order. Placeholder markers for unmatched blocks stay
// out of the trail.
func templateTrail(items []*game.SkillItem, isPassive bool) []string {
	var trail []string
	seen := make(map[string]bool)
	var walk func(items []*game.SkillItem, reverse bool)
	walk = func(items []*game.SkillItem, reverse bool) {
		for _, item := range displayOrder(items, reverse) {
			if item == nil {
				continue
			}
			id := item.TemplateID
			if id != "" && id != "N/A" && id != searchFailed && !seen[id] {
				seen[id] = true
				trail = append(trail, id)
			}
			walk(item.Nested, false)
		}
	}
	walk(items, isPassive)
	return trail
}

// collectTooltips gathers every tooltip in display order, keeping both
// languages paired even when one side is empty.
func collectTooltips(sections, passives []*game.SkillItem) []game.BilingualText {
	var tips []game.BilingualText
	var walk func(items []*game.SkillItem, reverse bool)
	walk = func(items []*game.SkillItem, reverse bool) {
		for _, item := range displayOrder(items, reverse) {
			if item == nil {
				continue
			}
			if item.Extra != nil {
				tip := game.BilingualText{
					EN: strings.TrimSpace(item.Extra.Text.EN),
					JA: strings.TrimSpace(item.Extra.Text.JA),
				}
				if tip.EN != "" || tip.JA != "" {
					tips = append(tips, tip)
				}
			}
			walk(item.Nested, false)
		}
	}
	walk(sections, false)
	walk(passives, true)
	return tips
}

func joinLines(lines []string) string {
	var kept []string
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
