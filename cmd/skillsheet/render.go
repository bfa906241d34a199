package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sawakaze/skillsheet/internal/config"
	"github.com/sawakaze/skillsheet/internal/loaders/catalog"
	"github.com/sawakaze/skillsheet/internal/loaders/localization"
	"github.com/sawakaze/skillsheet/internal/loaders/rules"
	"github.com/sawakaze/skillsheet/internal/loaders/stats"
	"github.com/sawakaze/skillsheet/internal/orchestrators/assemble"
	"github.com/sawakaze/skillsheet/internal/pkg/idgen"
	"github.com/sawakaze/skillsheet/internal/reports"
	"github.com/sawakaze/skillsheet/internal/repositories/herotree"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render descriptions from the stored trees",
	Long: `Load the stored hero trees, match every ability block against the
localization templates, resolve the placeholder values, and write the
bilingual report files. Requires a prior "resolve" (or use "run").`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	orch, err := newAssembleOrchestrator(cfg, repo)
	if err != nil {
		return err
	}

	out, err := orch.Run(cmd.Context(), assembleInput(cfg))
	if err != nil {
		return err
	}

	printRenderSummary(out)
	return nil
}

// newAssembleOrchestrator wires the assembly phase from file-backed
// collaborators. Shared with the run command.
func newAssembleOrchestrator(cfg *config.Config, repo herotree.Repository) (assemble.Service, error) {
	statsLookup, err := stats.NewFile(&stats.FileConfig{
		Dir:     cfg.Stats.Dir,
		Pattern: cfg.Stats.Pattern,
	})
	if err != nil {
		return nil, err
	}

	return assemble.NewOrchestrator(&assemble.Config{
		Repository:   repo,
		Catalog:      catalog.NewFileLoader(),
		Localization: localization.NewFileLoader(),
		Rules:        rules.NewFileLoader(),
		Stats:        statsLookup,
		Writer:       reports.NewFileWriter(),
		IDGenerator:  idgen.NewUUID("run"),
	})
}

func assembleInput(cfg *config.Config) *assemble.RunInput {
	return &assemble.RunInput{
		DataDir:        cfg.Data.Dir,
		EnglishPath:    cfg.Language.EnglishPath,
		JapanesePath:   cfg.Language.JapanesePath,
		OverridesPath:  cfg.Language.OverridesPath,
		TextRulesPath:  cfg.Rules.TextRulesPath,
		ValueRulesPath: cfg.Rules.ValueRulesPath,
		OutputDir:      cfg.OutputDir,
	}
}

func printRenderSummary(out *assemble.RunOutput) {
	fmt.Printf("Rendered %d heroes (run %s)\n", len(out.Skills), out.RunID)
	for _, path := range out.Reports.FinalPaths {
		fmt.Printf("  wrote %s\n", path)
	}
	if out.Reports.DebugPath != "" {
		fmt.Printf("  wrote %s\n", out.Reports.DebugPath)
	}
	if out.Reports.FamiliarLogPath != "" {
		fmt.Printf("  wrote %s\n", out.Reports.FamiliarLogPath)
	}
	if out.Reports.WarningsPath != "" {
		fmt.Printf("  wrote %s (%d warnings)\n", out.Reports.WarningsPath, len(out.Warnings))
	}
	if out.Reports.UnresolvedPath != "" {
		fmt.Printf("  wrote %s (%d unresolved placeholders)\n",
			out.Reports.UnresolvedPath, len(out.Reports.Unresolved))
	}
}
