package reports

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

var unresolvedPattern = regexp.MustCompile(`\{\w+\}`)

// AnalyzeUnresolved counts the template tokens that survived rendering,
// across every description, title, and tooltip. Sorted by count descending,
// then token.
func AnalyzeUnresolved(skills []*game.HeroSkills) []UnresolvedPlaceholder {
	counts := make(map[string]int)
	count := func(texts ...string) {
		for _, text := range texts {
			for _, token := range unresolvedPattern.FindAllString(text, -1) {
				counts[token]++
			}
		}
	}
	for _, hero := range skills {
		hero.AllItems(func(item *game.SkillItem) {
			count(item.Text.EN, item.Text.JA)
			if item.Title != nil {
				count(item.Title.EN, item.Title.JA)
			}
		})
	}

	out := make([]UnresolvedPlaceholder, 0, len(counts))
	for token, n := range counts {
		out = append(out, UnresolvedPlaceholder{Token: token, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}

func writeUnresolved(path string, unresolved []UnresolvedPlaceholder) error {
	rows := make([][]string, 0, len(unresolved))
	for _, u := range unresolved {
		rows = append(rows, []string{u.Token, strconv.Itoa(u.Count)})
	}
	return writeCSV(path, []string{"placeholder", "count"}, rows, false)
}
