package assemble

import (
	"log/slog"
	"strings"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/loaders/stats"
)

// searchFailed is the visible template-id marker for blocks no candidate
// matched. It flows into the debug sheet so failures are scannable per
// hero.
const searchFailed = "SEARCH_FAILED"

// assembler holds the run-wide state for one assembly pass: the merged
// localization table with its pre-sliced candidate subsets, the override
// rules, and the shared diagnostics.
type assembler struct {
	table        *game.StringTable
	overrides    *game.Overrides
	stats        stats.Lookup
	specialProps game.Catalog
	extraTypes   map[string]bool
	diags        *Diagnostics

	statusCandidates         []string
	propertyCandidates       []string
	familiarCandidates       []string
	familiarStatusCandidates []string
	extraCandidates          []string
}

func newAssembler(table *game.StringTable, overrides *game.Overrides, statsLookup stats.Lookup, specialProps game.Catalog, extraTypes map[string]bool) *assembler {
	return &assembler{
		table:        table,
		overrides:    overrides,
		stats:        statsLookup,
		specialProps: specialProps,
		extraTypes:   extraTypes,
		diags:        NewDiagnostics(),

		statusCandidates:         table.KeysWithPrefix("specials.v2.statuseffect."),
		propertyCandidates:       table.KeysWithPrefix("specials.v2.property."),
		familiarCandidates:       table.KeysWithPrefix("specials.v2."),
		familiarStatusCandidates: table.KeysWithPrefix("familiar.statuseffect."),
		extraCandidates:          table.KeysContaining(".extra"),
	}
}

// heroAssembly is the per-hero view of the assembler: identity, stats, and
// the level context every placeholder search depends on.
type heroAssembly struct {
	*assembler
	heroID      string
	heroName    string
	maxAttack   int
	manaSpeedID string
	// mainMax is the hero special's max level. Familiar effects and
	// passives scale against it even when their own blocks carry no level.
	mainMax int
}

// assembleHero builds one hero's full description set from its resolved
// tree.
func (a *assembler) assembleHero(tree game.HeroTree) *game.HeroSkills {
	hero := tree.Root
	heroStats := a.stats.HeroStats(tree.HeroID)
	h := &heroAssembly{
		assembler: a,
		heroID:    tree.HeroID,
		heroName:  heroStats.Name,
		maxAttack: heroStats.MaxAttack,
		mainMax:   8,
	}
	skills := &game.HeroSkills{HeroID: tree.HeroID, HeroName: heroStats.Name}

	if special := hero.Child("specialId_details"); len(special) > 0 {
		h.manaSpeedID = hero.Str("manaSpeedId")
		h.mainMax = int(special.NumOr("maxLevel", 8))
		skills.RemoveBuffsFirst = truthy(special["removeBuffsFirst"])
		skills.DirectEffect = h.parseDirectEffect(special)
		skills.ClearBuffs = h.parseClearBuffs(special)
		skills.Properties = h.parseProperties(special.List("properties"), special)
		skills.StatusEffects = h.parseStatusEffects(special.List("statusEffects"), special)
		skills.Familiars = h.parseFamiliars(special.List("summonedFamiliars"), special)
	}

	var passives []any
	passives = append(passives, hero.List("passiveSkills")...)
	if costume := hero.Child("costumeBonusesId_details"); costume != nil {
		passives = append(passives, costume.List("passiveSkills")...)
	}
	skills.Passives = h.parsePassives(passives)

	compose(skills)
	return skills
}

// resolveValue resolves one placeholder against a scope, with the hero's
// override rules in front of the heuristic search. A rule that matches but
// cannot produce a value leaves the placeholder unresolved; the reason is
// logged rather than papered over with a heuristic guess.
func (h *heroAssembly) resolveValue(placeholder string, scope game.Record, maxLevel int, isModifier bool, ignore []string) (any, string) {
	value, source := engine.ResolveValue(engine.ResolveValueInput{
		Placeholder: placeholder,
		Scope:       scope,
		MaxLevel:    maxLevel,
		HeroID:      h.heroID,
		Rules:       &h.overrides.Values,
		IsModifier:  isModifier,
		IgnoreKeys:  ignore,
	})
	if value == nil && source != "" {
		slog.Debug("placeholder left unresolved",
			"hero_id", h.heroID,
			"placeholder", placeholder,
			"reason", source)
	}
	return value, source
}

// matchTemplate picks a template id for a block, recording the failure
// diagnostic when nothing scores.
func (h *heroAssembly) matchTemplate(block, parent game.Record, candidates []string) (string, bool) {
	id, warning := engine.BestTemplateID(engine.MatchInput{
		Block:      block,
		Parent:     parent,
		Candidates: candidates,
	})
	if warning != "" {
		h.diags.Warn(warning)
	}
	return id, id != ""
}

// renderText renders a template id with the given params in both
// languages. Unknown ids produce the visible NO_TEMPLATE_FOR_ marker
// instead of silence.
func (h *heroAssembly) renderText(templateID string, params map[string]any) game.BilingualText {
	entry, ok := h.table.Get(templateID)
	if !ok {
		marker := "NO_TEMPLATE_FOR_" + templateID
		return game.BilingualText{EN: marker, JA: marker}
	}
	return game.BilingualText{
		EN: engine.RenderTemplate(entry.EN, params),
		JA: engine.RenderTemplate(entry.JA, params),
	}
}

// withMaxLevel returns a shallow copy of rec with maxLevel pinned, so the
// level is searchable alongside the block's own fields.
func withMaxLevel(rec game.Record, maxLevel int) game.Record {
	out := make(game.Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	out["maxLevel"] = float64(maxLevel)
	return out
}

// mergeRecords overlays over onto base without mutating either.
func mergeRecords(base, over game.Record) game.Record {
	out := make(game.Record, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// candidatesContaining filters sorted ids to those containing sub.
func candidatesContaining(ids []string, sub string) []string {
	var out []string
	for _, id := range ids {
		if strings.Contains(id, sub) {
			out = append(out, id)
		}
	}
	return out
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case nil:
		return false
	default:
		n, ok := game.AsNumber(v)
		return ok && n != 0
	}
}
