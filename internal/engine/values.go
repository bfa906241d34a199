package engine

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// ResolveValueInput carries everything a single placeholder resolution
// needs. Scope is the data block to search; Rules may be nil when no
// override rules are loaded.
type ResolveValueInput struct {
	Placeholder string
	Scope       game.Record
	MaxLevel    int
	HeroID      string
	Rules       *game.ValueOverrides
	// IsModifier forces offset-from-1000 semantics even when the matched
	// key does not contain "modifier".
	IsModifier bool
	// IgnoreKeys drops any leaf whose lowercased path contains one of
	// these substrings before the heuristic search runs.
	IgnoreKeys []string
}

// ResolveValue resolves one placeholder to a value. The returned value is
// nil when nothing matched; diag is a human-readable note on how the value
// was produced, or why an override rule could not produce one.
//
// Precedence: hero-specific override rule, common override rule, heuristic
// field search. A rule, once found, short-circuits the heuristics even when
// it fails to produce a value.
func ResolveValue(in ResolveValueInput) (value any, diag string) {
	if in.Rules != nil {
		if rule, ok := in.Rules.Lookup(in.HeroID, in.Placeholder); ok {
			return resolveByRule(in, rule)
		}
	}
	return resolveHeuristic(in)
}

func resolveByRule(in ResolveValueInput, rule game.ValueRule) (any, string) {
	if rule.Calc == "fixed" {
		if n, err := strconv.Atoi(rule.Value); err == nil {
			return n, "Fixed Rule"
		}
		if f, err := strconv.ParseFloat(rule.Value, 64); err == nil {
			return f, "Fixed Rule"
		}
		return rule.Value, "Fixed Rule"
	}

	var matched []Leaf
	for _, leaf := range Flatten(in.Scope) {
		if strings.HasSuffix(leaf.Path, rule.Key) {
			matched = append(matched, leaf)
		}
	}
	if len(matched) == 1 {
		if n, ok := game.AsNumber(matched[0].Value); ok {
			if strings.Contains(strings.ToLower(matched[0].Path), "permil") {
				return n / 10, fmt.Sprintf("Exception Rule: %s", matched[0].Path)
			}
			return int(math.Trunc(n)), fmt.Sprintf("Exception Rule: %s", matched[0].Path)
		}
	}
	return nil, fmt.Sprintf("Exception rule key '%s' not found or ambiguous", rule.Key)
}

var fragmentPattern = regexp.MustCompile(`[A-Z][^A-Z]*`)

// placeholderFragments splits a placeholder name on capital-letter
// boundaries into lowercase fragments. Names without boundaries fall back
// to the whole name; ALL-CAPS names split into single letters, which is
// intentional for parity with the curated rule data.
func placeholderFragments(name string) []string {
	parts := fragmentPattern.FindAllString(name, -1)
	if len(parts) == 0 {
		return []string{strings.ToLower(name)}
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return parts
}

type scoredLeaf struct {
	path  string
	value float64
	score int
}

func resolveHeuristic(in ResolveValueInput) (any, string) {
	var leaves []Leaf
	for _, leaf := range Flatten(in.Scope) {
		if !ignored(strings.ToLower(leaf.Path), in.IgnoreKeys) {
			leaves = append(leaves, leaf)
		}
	}
	byPath := make(map[string]float64, len(leaves))
	for _, leaf := range leaves {
		if n, ok := game.AsNumber(leaf.Value); ok {
			byPath[leaf.Path] = n
		}
	}

	fragments := placeholderFragments(in.Placeholder)
	var candidates []scoredLeaf
	for _, leaf := range leaves {
		lower := strings.ToLower(leaf.Path)
		n, ok := game.AsNumber(leaf.Value)
		if !ok {
			continue
		}
		matched := 0
		for _, frag := range fragments {
			if strings.Contains(lower, frag) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := matched * 10
		if strings.Contains(lower, "power") || strings.Contains(lower, "modifier") {
			score += 5
		}
		if strings.Contains(lower, "permil") {
			score += 3
		}
		candidates = append(candidates, scoredLeaf{path: leaf.Path, value: n, score: score})
	}
	if len(candidates) == 0 {
		return nil, ""
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if len(candidates[i].path) != len(candidates[j].path) {
			return len(candidates[i].path) < len(candidates[j].path)
		}
		return candidates[i].path < candidates[j].path
	})
	best := candidates[0]

	increment := 0.0
	for _, incKey := range incrementCandidates(best.path) {
		if n, ok := byPath[incKey]; ok {
			increment = n
			break
		}
	}

	lower := strings.ToLower(best.path)
	levels := float64(in.MaxLevel - 1)
	switch {
	case in.IsModifier || strings.Contains(lower, "modifier"):
		return ((best.value - 1000) + increment*levels) / 10, best.path
	case strings.Contains(lower, "permil"):
		return (best.value + increment*levels) / 10, best.path
	default:
		return int(math.Round(best.value + increment*levels)), best.path
	}
}

var trailingSegment = regexp.MustCompile(`[A-Z][^A-Z]*$`)

// incrementCandidates lists the per-level companion keys to try for a base
// key, most specific first.
func incrementCandidates(key string) []string {
	if strings.HasSuffix(key, "PerMil") {
		stem := strings.TrimSuffix(key, "PerMil")
		return []string{stem + "PerLevelPerMil", stem + "IncrementPerLevelPerMil"}
	}
	if loc := trailingSegment.FindStringIndex(key); loc != nil {
		return []string{key[:loc[0]] + "IncrementPerLevel" + key[loc[0]:]}
	}
	return []string{key + "incrementperlevel"}
}

func ignored(lowerKey string, ignoreKeys []string) bool {
	for _, ign := range ignoreKeys {
		if strings.Contains(lowerKey, ign) {
			return true
		}
	}
	return false
}
