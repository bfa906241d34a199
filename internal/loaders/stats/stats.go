// Package stats answers hero display name and max-attack lookups from the
// newest exported stats sheet.
package stats

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_lookup.go -package=statsmock github.com/sawakaze/skillsheet/internal/loaders/stats Lookup

// Lookup resolves one hero's stats. Heroes missing from the sheet get the
// "N/A" zero entry rather than an error; damage numbers then come out as 0,
// which is visible in the reports without stopping the run.
type Lookup interface {
	HeroStats(heroID string) game.HeroStats
}

// DefaultPattern matches the versioned stats sheet exports.
const DefaultPattern = "hdb4-V*.csv"

// attackColumns in priority order: costume-bonus tiers first, base last.
var attackColumns = []string{
	"Max level CB4: Attack",
	"Max level CB3: Attack",
	"Max level CB2: Attack",
	"Max level CB1: Attack",
	"Max level: Attack",
}

// FileConfig locates the stats sheet.
type FileConfig struct {
	Dir string
	// Pattern defaults to DefaultPattern.
	Pattern string
}

// Validate checks required fields and applies defaults.
func (c *FileConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Dir == "" {
		return errors.InvalidArgument("stats directory is required")
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	return nil
}

// File is a Lookup over the newest matching stats sheet. The sheet is
// optional input: when none matches, every lookup returns the zero entry.
type File struct {
	rows map[string]map[string]string
}

// NewFile finds the newest matching sheet and loads it whole. Rows keep
// every column so the attack priority selection can see the costume-bonus
// tiers.
func NewFile(cfg *FileConfig) (*File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &File{rows: make(map[string]map[string]string)}

	matches, err := filepath.Glob(filepath.Join(cfg.Dir, cfg.Pattern))
	if err != nil {
		return nil, errors.InvalidArgumentf("bad stats pattern %q: %v", cfg.Pattern, err)
	}
	if len(matches) == 0 {
		slog.Warn("no hero stats sheet found", "dir", cfg.Dir, "pattern", cfg.Pattern)
		return f, nil
	}

	latest := newestFile(matches)
	if err := f.read(latest); err != nil {
		slog.Warn("failed to load hero stats sheet", "file", latest, "error", err)
		return &File{rows: make(map[string]map[string]string)}, nil
	}
	slog.Info("hero stats loaded", "file", filepath.Base(latest), "rows", len(f.rows))
	return f, nil
}

// HeroStats returns the display name and the highest-priority available
// attack value for a hero.
func (f *File) HeroStats(heroID string) game.HeroStats {
	row, ok := f.rows[heroID]
	if !ok {
		return game.HeroStats{Name: "N/A"}
	}
	out := game.HeroStats{Name: strings.TrimSpace(row["Name"])}
	if out.Name == "" {
		out.Name = "N/A"
	}
	for _, col := range attackColumns {
		if n, ok := parseAttack(row[col]); ok {
			out.MaxAttack = n
			break
		}
	}
	return out
}

func (f *File) read(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return nil
	}

	header := records[0]
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			}
		}
		if id := strings.TrimSpace(row["hero_id"]); id != "" {
			f.rows[id] = row
		}
	}
	return nil
}

// newestFile picks the most recently modified path, name-descending on
// ties so reruns are stable.
func newestFile(paths []string) string {
	best := paths[0]
	bestInfo, _ := os.Stat(best)
	for _, p := range paths[1:] {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if bestInfo == nil ||
			info.ModTime().After(bestInfo.ModTime()) ||
			(info.ModTime().Equal(bestInfo.ModTime()) && p > best) {
			best, bestInfo = p, info
		}
	}
	return best
}

func parseAttack(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	if fl, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(fl), true
	}
	return 0, false
}
