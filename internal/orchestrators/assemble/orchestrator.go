// Package assemble implements phase two of the pipeline: match every block
// of every stored hero tree to its localization template, resolve the
// placeholder values, and render the bilingual description reports.
package assemble

//go:generate mockgen -destination=mock/mock_service.go -package=assemblemock github.com/sawakaze/skillsheet/internal/orchestrators/assemble Service

import (
	"context"
	"log/slog"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
	"github.com/sawakaze/skillsheet/internal/loaders/catalog"
	"github.com/sawakaze/skillsheet/internal/loaders/localization"
	"github.com/sawakaze/skillsheet/internal/loaders/rules"
	"github.com/sawakaze/skillsheet/internal/loaders/stats"
	"github.com/sawakaze/skillsheet/internal/pkg/idgen"
	"github.com/sawakaze/skillsheet/internal/reports"
	"github.com/sawakaze/skillsheet/internal/repositories/herotree"
)

// Service defines the assembly phase operations
type Service interface {
	// Run assembles descriptions for every stored hero tree and writes
	// the report files.
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the assembly orchestrator
type Config struct {
	Repository   herotree.Repository
	Catalog      catalog.Loader
	Localization localization.Loader
	Rules        rules.Loader
	Stats        stats.Lookup
	Writer       reports.Writer
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Localization == nil {
		vb.RequiredField("Localization")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Stats == nil {
		vb.RequiredField("Stats")
	}
	if c.Writer == nil {
		vb.RequiredField("Writer")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo         herotree.Repository
	catalog      catalog.Loader
	localization localization.Loader
	rules        rules.Loader
	stats        stats.Lookup
	writer       reports.Writer
	idGen        idgen.Generator
}

// NewOrchestrator creates a new assembly orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:         cfg.Repository,
		catalog:      cfg.Catalog,
		localization: cfg.Localization,
		rules:        cfg.Rules,
		stats:        cfg.Stats,
		writer:       cfg.Writer,
		idGen:        cfg.IDGenerator,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// RunInput holds the parameters for an assembly run
type RunInput struct {
	// DataDir holds the game configuration files. Ignored when Data is
	// set.
	DataDir string

	// Data reuses an already loaded game configuration, letting a
	// same-process integration phase feed assembly without a second load
	Data *catalog.GameData

	// Set reuses an already stored tree set instead of loading it back
	Set *game.TreeSet

	// EnglishPath and JapanesePath are the language CSV files
	EnglishPath  string
	JapanesePath string

	// OverridesPath is the optional localization override JSON
	OverridesPath string

	// TextRulesPath and ValueRulesPath are the optional override rule
	// CSVs
	TextRulesPath  string
	ValueRulesPath string

	// OutputDir receives the report files
	OutputDir string
}

// RunOutput reports what the run produced
type RunOutput struct {
	// RunID identifies this run in logs and the warnings report
	RunID string

	// Skills holds the assembled descriptions in stored hero order
	Skills []*game.HeroSkills

	// Warnings lists the deduplicated diagnostics from the run
	Warnings []string

	// Reports names the files written
	Reports *reports.RenderOutput
}

func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Data == nil && input.DataDir == "" {
		return nil, errors.InvalidArgument("either loaded game data or a data directory is required")
	}
	if input.EnglishPath == "" || input.JapanesePath == "" {
		return nil, errors.InvalidArgument("both language files are required")
	}
	if input.OutputDir == "" {
		return nil, errors.InvalidArgument("output directory is required")
	}

	runID := o.idGen.Generate()

	data := input.Data
	if data == nil {
		loaded, err := o.catalog.Load(ctx, &catalog.LoadInput{Dir: input.DataDir})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load game data")
		}
		data = loaded.Data
	}

	set := input.Set
	if set == nil {
		loaded, err := o.repo.LoadSet(ctx, herotree.LoadSetInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load stored trees")
		}
		set = loaded.Set
	}

	localized, err := o.localization.Load(ctx, &localization.LoadInput{
		EnglishPath:   input.EnglishPath,
		JapanesePath:  input.JapanesePath,
		OverridesPath: input.OverridesPath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load localization")
	}

	ruleSet, err := o.rules.Load(ctx, &rules.LoadInput{
		TextRulesPath:  input.TextRulesPath,
		ValueRulesPath: input.ValueRulesPath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load override rules")
	}

	slog.InfoContext(ctx, "assembly run started",
		"run_id", runID,
		"set_id", set.SetID,
		"heroes", len(set.Heroes),
		"templates", localized.Table.Len(),
	)

	asm := newAssembler(localized.Table, ruleSet.Overrides, o.stats, data.SpecialProperties, data.ExtraDescTypes)
	skills := make([]*game.HeroSkills, 0, len(set.Heroes))
	for _, tree := range set.Heroes {
		skills = append(skills, asm.assembleHero(tree))
	}

	rendered, err := o.writer.Render(ctx, &reports.RenderInput{
		RunID:       runID,
		OutputDir:   input.OutputDir,
		Skills:      skills,
		Warnings:    asm.diags.Warnings(),
		FamiliarLog: asm.diags.FamiliarLog(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write reports")
	}

	slog.InfoContext(ctx, "assembly run complete",
		"run_id", runID,
		"heroes", len(skills),
		"warnings", len(asm.diags.Warnings()),
		"final_files", len(rendered.FinalPaths),
	)

	return &RunOutput{
		RunID:    runID,
		Skills:   skills,
		Warnings: asm.diags.Warnings(),
		Reports:  rendered,
	}, nil
}
