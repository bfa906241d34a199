package game

import "strings"

// TextOverrides maps skill ids to hand-picked template ids, either for one
// hero or for every hero.
type TextOverrides struct {
	Hero   map[string]map[string]string
	Common map[string]string
}

// Lookup returns the template id for a skill, hero-specific rules first.
func (o TextOverrides) Lookup(heroID, skillID string) (string, bool) {
	if rules, ok := o.Hero[heroID]; ok {
		if id, ok := rules[skillID]; ok {
			return id, true
		}
	}
	id, ok := o.Common[skillID]
	return id, ok
}

// ValueRule is one placeholder override. Calc "fixed" takes Value literally;
// otherwise Key names a flattened-path suffix to read from the skill block.
type ValueRule struct {
	Calc  string
	Value string
	Key   string
}

// ValueOverrides maps uppercased placeholder names to rules, either for one
// hero or for every hero.
type ValueOverrides struct {
	Hero   map[string]map[string]ValueRule
	Common map[string]ValueRule
}

// Lookup returns the rule for a placeholder, hero-specific rules first. The
// placeholder is matched case-insensitively.
func (o ValueOverrides) Lookup(heroID, placeholder string) (ValueRule, bool) {
	placeholder = strings.ToUpper(placeholder)
	if rules, ok := o.Hero[heroID]; ok {
		if rule, ok := rules[placeholder]; ok {
			return rule, true
		}
	}
	rule, ok := o.Common[placeholder]
	return rule, ok
}

// Overrides bundles both override tables.
type Overrides struct {
	Text   TextOverrides
	Values ValueOverrides
}

// NewOverrides returns an empty, fully initialized rule set.
func NewOverrides() *Overrides {
	return &Overrides{
		Text: TextOverrides{
			Hero:   make(map[string]map[string]string),
			Common: make(map[string]string),
		},
		Values: ValueOverrides{
			Hero:   make(map[string]map[string]ValueRule),
			Common: make(map[string]ValueRule),
		},
	}
}
