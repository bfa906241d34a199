package reports

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// finalColumns is the reviewer-facing sheet layout. Column order is load
// bearing: the review spreadsheets are built on top of it.
var finalColumns = []string{
	"hero_id", "hero_name",
	"ss_lang_key", "passive_lang_key",
	"passive_en", "passive_ja",
	"ss_en", "ss_ja",
	"extra_en_1", "extra_ja_1",
	"extra_en_2", "extra_ja_2",
}

// maxRowsPerFile splits the final sheet into numbered files; the review
// tooling chokes on larger uploads.
const maxRowsPerFile = 600

func writeFinalCSV(dir string, skills []*game.HeroSkills) ([]string, error) {
	rows := make([][]string, 0, len(skills))
	for _, hero := range skills {
		rows = append(rows, finalRow(hero))
	}

	chunks := (len(rows) + maxRowsPerFile - 1) / maxRowsPerFile
	if chunks <= 1 {
		path := filepath.Join(dir, "hero_skill_output.csv")
		if err := writeCSV(path, finalColumns, rows, true); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var paths []string
	for i := 0; i < chunks; i++ {
		start := i * maxRowsPerFile
		end := start + maxRowsPerFile
		if end > len(rows) {
			end = len(rows)
		}
		path := filepath.Join(dir, fmt.Sprintf("hero_skill_output_%d.csv", i+1))
		if err := writeCSV(path, finalColumns, rows[start:end], true); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func finalRow(hero *game.HeroSkills) []string {
	tooltip := func(i int) game.BilingualText {
		if i < len(hero.Tooltips) {
			return hero.Tooltips[i]
		}
		return game.BilingualText{}
	}
	return []string{
		hero.HeroID,
		hero.HeroName,
		strings.Join(hero.SpecialKeys, "\n"),
		strings.Join(hero.PassiveKeys, "\n"),
		hero.PassiveText.EN,
		hero.PassiveText.JA,
		hero.SpecialText.EN,
		hero.SpecialText.JA,
		tooltip(0).EN, tooltip(0).JA,
		tooltip(1).EN, tooltip(1).JA,
	}
}
