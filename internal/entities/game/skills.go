package game

// ItemKind tags what part of an ability a SkillItem describes. Final
// formatting differs per kind (headings break paragraphs, passives carry
// titles and render in reverse order), so the kind travels with the item
// instead of being re-derived downstream.
type ItemKind string

// Item kinds
const (
	KindDirectEffect   ItemKind = "direct_effect"
	KindClearBuffs     ItemKind = "clear_buffs"
	KindProperty       ItemKind = "property"
	KindContainer      ItemKind = "container"
	KindHeading        ItemKind = "heading"
	KindStatusEffect   ItemKind = "status_effect"
	KindFamiliar       ItemKind = "familiar"
	KindFamiliarEffect ItemKind = "familiar_effect"
	KindPassive        ItemKind = "passive"
	KindTooltip        ItemKind = "tooltip"
)

// SkillItem is one assembled description entry for a hero ability part.
type SkillItem struct {
	Kind       ItemKind       `json:"kind"`
	ID         string         `json:"id"`
	TemplateID string         `json:"templateId"`
	Params     map[string]any `json:"params,omitempty"`
	Text       BilingualText  `json:"text"`
	Title      *BilingualText `json:"title,omitempty"`
	Nested     []*SkillItem   `json:"nested,omitempty"`
	Extra      *SkillItem     `json:"extra,omitempty"`
	Failed     bool           `json:"failed,omitempty"`
}

// Walk visits the item, its nested items depth-first, and any tooltip.
func (i *SkillItem) Walk(fn func(*SkillItem)) {
	if i == nil {
		return
	}
	fn(i)
	for _, n := range i.Nested {
		n.Walk(fn)
	}
	if i.Extra != nil {
		i.Extra.Walk(fn)
	}
}

// HeroSkills is one hero's fully assembled output: the per-category items
// plus the composed report fields.
type HeroSkills struct {
	HeroID   string `json:"heroId"`
	HeroName string `json:"heroName"`

	DirectEffect  *SkillItem   `json:"directEffect,omitempty"`
	ClearBuffs    *SkillItem   `json:"clearBuffs,omitempty"`
	Properties    []*SkillItem `json:"properties,omitempty"`
	StatusEffects []*SkillItem `json:"statusEffects,omitempty"`
	Familiars     []*SkillItem `json:"familiars,omitempty"`
	Passives      []*SkillItem `json:"passiveSkills,omitempty"`

	// RemoveBuffsFirst pulls the dispel line to the front of the composed
	// special description.
	RemoveBuffsFirst bool `json:"removeBuffsFirst,omitempty"`

	SpecialText BilingualText `json:"specialText"`
	PassiveText BilingualText `json:"passiveText"`

	// SpecialKeys and PassiveKeys list the distinct template ids behind
	// each composed description, in display order.
	SpecialKeys []string        `json:"specialKeys,omitempty"`
	PassiveKeys []string        `json:"passiveKeys,omitempty"`
	Tooltips    []BilingualText `json:"tooltips,omitempty"`
}

// AllItems visits every assembled item: each category in definition order,
// nested items depth first, tooltips included.
func (h *HeroSkills) AllItems(fn func(*SkillItem)) {
	h.DirectEffect.Walk(fn)
	h.ClearBuffs.Walk(fn)
	for _, item := range h.Properties {
		item.Walk(fn)
	}
	for _, item := range h.StatusEffects {
		item.Walk(fn)
	}
	for _, item := range h.Familiars {
		item.Walk(fn)
	}
	for _, item := range h.Passives {
		item.Walk(fn)
	}
}
