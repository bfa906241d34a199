// Package localization loads the bilingual template tables: one CSV per
// language plus an optional structured override file that is applied on
// top, last write winning.
package localization

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"golang.org/x/text/language"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_loader.go -package=localizationmock github.com/sawakaze/skillsheet/internal/loaders/localization Loader

// Loader builds the template string table.
type Loader interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput names the two language CSV files and the optional overrides
// JSON. An empty OverridesPath skips the override step.
type LoadInput struct {
	EnglishPath   string
	JapanesePath  string
	OverridesPath string
}

// LoadOutput carries the merged table.
type LoadOutput struct {
	Table *game.StringTable
}

// FileLoader reads the language files from disk.
type FileLoader struct{}

// NewFileLoader creates a file-backed localization loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads both language CSVs and applies the overrides file when
// present. The CSVs are required input.
func (l *FileLoader) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.EnglishPath == "" || input.JapanesePath == "" {
		return nil, errors.InvalidArgument("both language CSV paths are required")
	}

	table := game.NewStringTable()
	if err := readLanguageCSV(input.EnglishPath, language.English, table); err != nil {
		return nil, err
	}
	if err := readLanguageCSV(input.JapanesePath, language.Japanese, table); err != nil {
		return nil, err
	}
	if input.OverridesPath != "" {
		if err := applyOverrides(input.OverridesPath, table); err != nil {
			return nil, err
		}
	}

	slog.Info("language tables loaded", "entries", table.Len())
	return &LoadOutput{Table: table}, nil
}

// readLanguageCSV reads rows of `id,text,...`. Rows with fewer than two
// columns or a blank id are skipped; the text column is taken verbatim.
func readLanguageCSV(path string, tag language.Tag, table *game.StringTable) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("required language file %s is missing", filepath.Base(path))
		}
		return errors.Wrapf(err, "failed to read %s", filepath.Base(path))
	}

	reader := csv.NewReader(bytes.NewReader(stripBOM(data)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", filepath.Base(path))
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		table.Set(id, tag, row[1])
	}
	return nil
}

type overridesFile struct {
	LanguageOverridesConfig struct {
		Overrides map[string]struct {
			OverrideEntries []struct {
				Key  string `json:"key"`
				Text string `json:"text"`
			} `json:"overrideEntries"`
		} `json:"overrides"`
	} `json:"languageOverridesConfig"`
}

var overrideLanguages = []struct {
	name string
	tag  language.Tag
}{
	{"English", language.English},
	{"Japanese", language.Japanese},
}

// applyOverrides layers the override entries on top of the CSV texts. A
// missing file is fine; the game does not always export one.
func applyOverrides(path string, table *game.StringTable) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no language overrides file", "path", path)
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", filepath.Base(path))
	}

	repaired := repairOverrideNewlines(string(data))
	var overrides overridesFile
	if err := sonic.UnmarshalString(repaired, &overrides); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", filepath.Base(path))
	}

	applied := 0
	for _, lang := range overrideLanguages {
		entries, ok := overrides.LanguageOverridesConfig.Overrides[lang.name]
		if !ok {
			continue
		}
		for _, entry := range entries.OverrideEntries {
			if entry.Key == "" {
				continue
			}
			table.Set(entry.Key, lang.tag, entry.Text)
			applied++
		}
	}
	slog.Info("language overrides applied", "entries", applied)
	return nil
}

var overrideTextPattern = regexp.MustCompile(`"text":\s*"((?:\\"|[^"])*)"`)

// repairOverrideNewlines escapes raw line breaks inside "text" values. The
// export writes them unescaped, which is not valid JSON.
func repairOverrideNewlines(src string) string {
	return overrideTextPattern.ReplaceAllStringFunc(src, func(m string) string {
		body := overrideTextPattern.FindStringSubmatch(m)[1]
		body = strings.ReplaceAll(body, "\r", "")
		body = strings.ReplaceAll(body, "\n", `\n`)
		return `"text": "` + body + `"`
	})
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}
