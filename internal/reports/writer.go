// Package reports writes the assembly outputs: the reviewer-facing skill
// sheet, the structural debug sheet, the familiar stat audit log, and the
// warning and unresolved-placeholder summaries.
package reports

import (
	"context"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_writer.go -package=reportsmock github.com/sawakaze/skillsheet/internal/reports Writer

// Writer renders one assembly run's report files.
type Writer interface {
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)
}

// RenderInput carries everything one assembly run produced. All files land
// under OutputDir, which is created on demand.
type RenderInput struct {
	RunID       string
	OutputDir   string
	Skills      []*game.HeroSkills
	Warnings    []string
	FamiliarLog []FamiliarLogEntry
}

// RenderOutput lists what was written. FamiliarLogPath and UnresolvedPath
// stay empty when there was nothing to log.
type RenderOutput struct {
	FinalPaths      []string
	DebugPath       string
	FamiliarLogPath string
	WarningsPath    string
	UnresolvedPath  string
	Unresolved      []UnresolvedPlaceholder
}

// FamiliarLogEntry is one familiar stat computation: the raw inputs
// alongside the derived outputs. RawAttackPerMil is "NOT_FOUND" when no
// effect carries an attack stat; the dependent fields stay empty then.
type FamiliarLogEntry struct {
	HeroID             string
	FamiliarID         string
	RawHealthPerMil    string
	CalculatedHealth   string
	RawAttackPerMil    string
	RawAttackIncrement string
	CalculatedAttack   string
}

// UnresolvedPlaceholder is one template token that survived rendering, with
// its occurrence count across every hero.
type UnresolvedPlaceholder struct {
	Token string
	Count int
}
