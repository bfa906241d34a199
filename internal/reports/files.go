package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sawakaze/skillsheet/internal/errors"
)

// utf8BOM prefixes every CSV so spreadsheet apps detect the encoding; the
// Japanese columns are unreadable without it in the usual office tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileWriter writes the report files to disk.
type FileWriter struct{}

// NewFileWriter creates a file-backed report writer.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Ensure FileWriter implements Writer
var _ Writer = (*FileWriter)(nil)

// Render writes every report for the run. The unresolved-placeholder
// summary is both logged and, when any token survived, written as its own
// file.
func (w *FileWriter) Render(_ context.Context, input *RenderInput) (*RenderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OutputDir == "" {
		return nil, errors.InvalidArgument("output directory is required")
	}
	if err := os.MkdirAll(input.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", input.OutputDir)
	}

	out := &RenderOutput{}
	var err error
	if out.FinalPaths, err = writeFinalCSV(input.OutputDir, input.Skills); err != nil {
		return nil, err
	}
	out.DebugPath = filepath.Join(input.OutputDir, "hero_skill_output_debug.csv")
	if err := writeDebugCSV(out.DebugPath, input.Skills); err != nil {
		return nil, err
	}
	if len(input.FamiliarLog) > 0 {
		out.FamiliarLogPath = filepath.Join(input.OutputDir, "familiar_parameter_log.csv")
		if err := writeFamiliarLog(out.FamiliarLogPath, input.FamiliarLog); err != nil {
			return nil, err
		}
	}
	out.WarningsPath = filepath.Join(input.OutputDir, "warnings.txt")
	if err := writeWarnings(out.WarningsPath, input.RunID, input.Warnings); err != nil {
		return nil, err
	}

	out.Unresolved = AnalyzeUnresolved(input.Skills)
	if len(out.Unresolved) == 0 {
		slog.Info("all placeholders resolved", "run_id", input.RunID)
	} else {
		for _, u := range out.Unresolved {
			slog.Warn("unresolved placeholder",
				"token", u.Token,
				"count", u.Count,
				"run_id", input.RunID)
		}
		out.UnresolvedPath = filepath.Join(input.OutputDir, "unresolved_placeholders.csv")
		if err := writeUnresolved(out.UnresolvedPath, out.Unresolved); err != nil {
			return nil, err
		}
	}

	slog.Info("reports written",
		"run_id", input.RunID,
		"heroes", len(input.Skills),
		"warnings", len(input.Warnings),
		"output_dir", input.OutputDir)
	return out, nil
}

// writeCSV writes one BOM-prefixed spreadsheet file. crlf selects the row
// terminator; the reviewer-facing sheet keeps CRLF for spreadsheet apps
// while the machine-read sheets use plain newlines.
func writeCSV(path string, header []string, rows [][]string, crlf bool) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	cw := csv.NewWriter(&buf)
	cw.UseCRLF = crlf
	if err := cw.Write(header); err != nil {
		return errors.Wrapf(err, "failed to encode %s", filepath.Base(path))
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", filepath.Base(path))
	}
	return nil
}
