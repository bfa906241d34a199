package reports

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sawakaze/skillsheet/internal/errors"
)

var familiarLogColumns = []string{
	"hero_id", "familiar_id",
	"raw_healthPerMil", "calculated_health",
	"raw_attackPercentPerMil", "raw_attackIncrement", "calculated_attack",
}

func writeFamiliarLog(path string, entries []FamiliarLogEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.HeroID, e.FamiliarID,
			e.RawHealthPerMil, e.CalculatedHealth,
			e.RawAttackPerMil, e.RawAttackIncrement, e.CalculatedAttack,
		})
	}
	return writeCSV(path, familiarLogColumns, rows, false)
}

// writeWarnings writes the deduplicated warning list with a run header.
// The file is written even when empty so a clean run leaves proof behind.
func writeWarnings(path, runID string, warnings []string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "run %s: %d warnings\n", runID, len(warnings))
	for _, w := range warnings {
		buf.WriteString(w)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", filepath.Base(path))
	}
	return nil
}
