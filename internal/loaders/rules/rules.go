// Package rules loads the hand-curated exception tables that bypass
// heuristic search: template-id overrides per skill and value overrides
// per placeholder. Both files are optional.
package rules

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_loader.go -package=rulesmock github.com/sawakaze/skillsheet/internal/loaders/rules Loader

// Loader builds the override rule set.
type Loader interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput names the two rule CSVs. Empty paths and missing files both
// mean "no rules of that kind".
type LoadInput struct {
	TextRulesPath  string
	ValueRulesPath string
}

// LoadOutput carries the parsed rule set, never nil.
type LoadOutput struct {
	Overrides *game.Overrides
}

// FileLoader reads the rule CSVs from disk.
type FileLoader struct{}

// NewFileLoader creates a file-backed rules loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads both rule files. Rows with a hero_id column value apply to
// that hero only; rows without one are common to all heroes.
func (l *FileLoader) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	overrides := game.NewOverrides()

	if err := readRuleCSV(input.TextRulesPath, func(row map[string]string) {
		skillID := strings.TrimSpace(row["skill_id"])
		templateID := strings.TrimSpace(row["lang_id"])
		if skillID == "" || templateID == "" {
			return
		}
		if heroID := strings.TrimSpace(row["hero_id"]); heroID != "" {
			if overrides.Text.Hero[heroID] == nil {
				overrides.Text.Hero[heroID] = make(map[string]string)
			}
			overrides.Text.Hero[heroID][skillID] = templateID
		} else {
			overrides.Text.Common[skillID] = templateID
		}
	}); err != nil {
		return nil, err
	}

	if err := readRuleCSV(input.ValueRulesPath, func(row map[string]string) {
		placeholder := strings.ToUpper(strings.TrimSpace(row["placeholder"]))
		if placeholder == "" {
			return
		}
		rule := game.ValueRule{
			Calc:  strings.TrimSpace(row["calc"]),
			Value: strings.TrimSpace(row["value"]),
			Key:   strings.TrimSpace(row["key"]),
		}
		if heroID := strings.TrimSpace(row["hero_id"]); heroID != "" {
			if overrides.Values.Hero[heroID] == nil {
				overrides.Values.Hero[heroID] = make(map[string]game.ValueRule)
			}
			overrides.Values.Hero[heroID][placeholder] = rule
		} else {
			overrides.Values.Common[placeholder] = rule
		}
	}); err != nil {
		return nil, err
	}

	return &LoadOutput{Overrides: overrides}, nil
}

// readRuleCSV reads a headered CSV and hands each row to fn as a
// column-name map. Missing files are skipped; the rule tables are curated
// by hand and often absent.
func readRuleCSV(path string, fn func(row map[string]string)) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no exception rules file", "path", path)
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", filepath.Base(path))
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", filepath.Base(path))
	}
	if len(rows) < 2 {
		return nil
	}

	header := rows[0]
	for _, row := range rows[1:] {
		named := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				named[strings.TrimSpace(col)] = row[i]
			}
		}
		fn(named)
	}
	return nil
}
