package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// MatchInput is one template-id selection request. Candidates is the
// pre-filtered, sorted id subset to choose from; Parent optionally supplies
// the enclosing scope for target/side fields on status-effect blocks.
type MatchInput struct {
	Block      game.Record
	Parent     game.Record
	Candidates []string
}

var buffIntensity = map[string]string{
	"MinorBuff":       "minor",
	"MinorDebuff":     "minor",
	"MajorBuff":       "major",
	"MajorDebuff":     "major",
	"PermanentBuff":   "permanent",
	"PermanentDebuff": "permanent",
}

// keywordListKeys are the only list fields the keyword scan descends into.
var keywordListKeys = map[string]bool{
	"statusEffects":           true,
	"effects":                 true,
	"statusEffectsToAdd":      true,
	"statusEffectCollections": true,
	"properties":              true,
}

// BestTemplateID picks the template id that best describes a data block.
//
// Status-effect blocks with enough structure take a fast path: the id is
// constructed directly from intensity, effect name, target, and side, and
// returned when present in the candidate set. Otherwise every candidate is
// scored against keywords collected from the block, and the highest score
// wins with ties broken by shorter then lexicographically smaller id.
//
// An empty id with a non-empty warning means no candidate scored at all.
func BestTemplateID(in MatchInput) (id string, warning string) {
	candidateSet := make(map[string]bool, len(in.Candidates))
	for _, c := range in.Candidates {
		candidateSet[c] = true
	}

	if fastID := statusEffectFastPath(in); fastID != "" && candidateSet[fastID] {
		return fastID, ""
	}

	keywords := CollectKeywords(in.Block)
	hasFixedPower := truthy(in.Block["hasFixedPower"])
	hasNegative := anyNegativeField(in.Block)
	familiarType := strings.ToLower(in.Block.Str("familiarType"))

	type scored struct {
		id    string
		score float64
	}
	var ranked []scored
	for _, candidate := range in.Candidates {
		segments := strings.Split(strings.ToLower(candidate), ".")
		segmentSet := make(map[string]bool, len(segments))
		for _, s := range segments {
			segmentSet[s] = true
		}
		score := 0.0
		for kw, weight := range keywords {
			if segmentSet[kw] {
				score += weight
			}
		}
		if strings.Contains(familiarType, "minion") && segmentSet["allies"] {
			score += 20
		}
		if strings.Contains(familiarType, "parasite") && segmentSet["enemies"] {
			score += 20
		}
		if hasFixedPower && segmentSet["fixedpower"] {
			score += 3
		}
		if hasNegative && segmentSet["decrement"] {
			score += 2
		}
		if score > 0 {
			ranked = append(ranked, scored{id: candidate, score: score})
		}
	}

	if len(ranked) == 0 {
		return "", matchFailure(in.Block)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if len(ranked[i].id) != len(ranked[j].id) {
			return len(ranked[i].id) < len(ranked[j].id)
		}
		return ranked[i].id < ranked[j].id
	})

	if in.Block.Has("familiarType") {
		shortlist := make([]string, 0, 5)
		for i := 0; i < len(ranked) && i < 5; i++ {
			shortlist = append(shortlist, fmt.Sprintf("%s=%.2f", ranked[i].id, ranked[i].score))
		}
		slog.Debug("familiar template shortlist",
			"block_id", in.Block.Str("id"),
			"candidates", shortlist)
	}
	return ranked[0].id, ""
}

// statusEffectFastPath builds the canonical status-effect id when the block
// carries all four parts. Target and side both read from the parent scope
// when one is supplied, otherwise from the block itself.
func statusEffectFastPath(in MatchInput) string {
	if !in.Block.Has("statusEffect") {
		return ""
	}
	intensity := buffIntensity[in.Block.Str("buff")]
	effect := in.Block.Str("statusEffect")
	src := in.Block
	if len(in.Parent) > 0 {
		src = in.Parent
	}
	target := src.Str("statusTargetType")
	side := src.Str("sideAffected")
	if intensity == "" || effect == "" || target == "" || side == "" {
		return ""
	}
	return fmt.Sprintf("specials.v2.statuseffect.%s.%s.%s.%s",
		intensity, strings.ToLower(effect), strings.ToLower(target), strings.ToLower(side))
}

// CollectKeywords gathers the block's string values as lowercase keywords,
// weighted 100/2^depth with the shallowest sighting kept. The scan descends
// only through the known nested list fields, two levels deep.
func CollectKeywords(block game.Record) map[string]float64 {
	keywords := make(map[string]float64)
	var walk func(rec game.Record, depth int)
	walk = func(rec game.Record, depth int) {
		if depth > 2 {
			return
		}
		weight := 100.0
		for i := 0; i < depth; i++ {
			weight /= 2
		}
		for _, key := range rec.SortedKeys() {
			switch v := rec[key].(type) {
			case string:
				kw := strings.ToLower(v)
				if keywords[kw] < weight {
					keywords[kw] = weight
				}
			case []any:
				if !keywordListKeys[key] {
					continue
				}
				for _, elem := range v {
					if child, ok := game.AsRecord(elem); ok {
						walk(child, depth+1)
					}
				}
			}
		}
	}
	walk(block, 0)
	return keywords
}

func anyNegativeField(block game.Record) bool {
	for _, v := range block {
		if n, ok := game.AsNumber(v); ok && n < 0 {
			return true
		}
	}
	return false
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case nil:
		return false
	default:
		n, ok := game.AsNumber(v)
		return ok && n != 0
	}
}

func matchFailure(block game.Record) string {
	id := block.Str("id")
	if id == "" {
		id = "UNKNOWN"
	}
	kind := block.Str("propertyType")
	if kind == "" {
		kind = block.Str("statusEffect")
	}
	if kind == "" {
		kind = block.Str("familiarType")
	}
	if kind == "" {
		kind = "N/A"
	}
	return fmt.Sprintf("Could not find lang_id for skill '%s' (type: %s)", id, kind)
}
