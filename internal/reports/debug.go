package reports

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// Debug sheet item budgets. The sheet is for scanning structure side by
// side, not for completeness; the debug JSON snapshot has everything.
const (
	debugPropLimit     = 3
	debugStatusLimit   = 5
	debugFamiliarLimit = 2
	debugPassiveLimit  = 3
	debugNestedLimit   = 2
)

// writeDebugCSV writes one row per hero with prefixed id/template/params
// columns per category. Columns are the union across heroes, sorted, with
// the hero identity first; cells missing on a row stay empty.
func writeDebugCSV(path string, skills []*game.HeroSkills) error {
	rows := make([]map[string]string, 0, len(skills))
	columns := make(map[string]bool)
	for _, hero := range skills {
		row := map[string]string{
			"hero_id":   hero.HeroID,
			"hero_name": hero.HeroName,
		}
		addDebugItem(row, "de", hero.DirectEffect)
		addDebugItem(row, "cb", hero.ClearBuffs)
		addDebugList(row, "prop", hero.Properties, debugPropLimit)
		addDebugList(row, "se", hero.StatusEffects, debugStatusLimit)
		for i, fam := range hero.Familiars {
			if i >= debugFamiliarLimit {
				break
			}
			addDebugItem(row, fmt.Sprintf("fam_%d", i+1), fam)
		}
		for i, passive := range hero.Passives {
			if i >= debugPassiveLimit {
				break
			}
			addDebugFields(row, fmt.Sprintf("passive_%d", i+1), passive)
		}
		for col := range row {
			columns[col] = true
		}
		rows = append(rows, row)
	}

	delete(columns, "hero_id")
	delete(columns, "hero_name")
	sorted := make([]string, 0, len(columns))
	for col := range columns {
		sorted = append(sorted, col)
	}
	sort.Strings(sorted)
	header := append([]string{"hero_id", "hero_name"}, sorted...)

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(header))
		for i, col := range header {
			line[i] = row[col]
		}
		cells = append(cells, line)
	}
	return writeCSV(path, header, cells, false)
}

// addDebugFields writes the item's id, template id, and params cells.
// Empty values stay unwritten so all-empty columns never appear.
func addDebugFields(row map[string]string, prefix string, item *game.SkillItem) {
	if item.ID != "" {
		row[prefix+"_id"] = item.ID
	}
	if item.TemplateID != "" {
		row[prefix+"_lang_id"] = item.TemplateID
	}
	if item.Params != nil {
		row[prefix+"_params"] = marshalParams(item.Params)
	}
}

func addDebugItem(row map[string]string, prefix string, item *game.SkillItem) {
	if item == nil {
		return
	}
	addDebugFields(row, prefix, item)
	if item.Extra != nil {
		if item.Extra.TemplateID != "" {
			row[prefix+"_extra_lang_id"] = item.Extra.TemplateID
		}
		if item.Extra.Params != nil {
			row[prefix+"_extra_params"] = marshalParams(item.Extra.Params)
		}
	}
}

// addDebugList writes a category's leading items and the first nested
// items under each. Familiars and passives have their own rules and do not
// come through here.
func addDebugList(row map[string]string, prefix string, items []*game.SkillItem, limit int) {
	for i, item := range items {
		if i >= limit {
			break
		}
		p := fmt.Sprintf("%s_%d", prefix, i+1)
		addDebugItem(row, p, item)
		for j, nested := range item.Nested {
			if j >= debugNestedLimit {
				break
			}
			addDebugItem(row, fmt.Sprintf("%s_nested_%d", p, j+1), nested)
		}
	}
}

// marshalParams renders a param map as compact JSON. Map keys marshal in
// sorted order, which keeps reruns diffable.
func marshalParams(params map[string]any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return "{}"
	}
	return string(data)
}
