package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sawakaze/skillsheet/internal/loaders/catalog"
	"github.com/sawakaze/skillsheet/internal/orchestrators/integrate"
	"github.com/sawakaze/skillsheet/internal/pkg/idgen"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resolve and render in one pass",
	Long: `Run both phases back to back: resolve every hero into a stored tree,
then render the bilingual reports from those trees. The loaded game data
and the resolved set are handed straight to the render phase, so nothing
is read twice.`,
	RunE: runBoth,
}

func runBoth(cmd *cobra.Command, args []string) error {
	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	integrator, err := integrate.NewOrchestrator(&integrate.Config{
		Loader:      catalog.NewFileLoader(),
		Repository:  repo,
		IDGenerator: idgen.NewUUID("treeset"),
	})
	if err != nil {
		return err
	}

	resolved, err := integrator.Run(cmd.Context(), &integrate.RunInput{
		DataDir: cfg.Data.Dir,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Resolved %d heroes (%d references) into set %s\n",
		len(resolved.Set.Heroes), resolved.ResolvedRefs, resolved.Set.SetID)

	assembler, err := newAssembleOrchestrator(cfg, repo)
	if err != nil {
		return err
	}

	input := assembleInput(cfg)
	input.Data = resolved.Data
	input.Set = resolved.Set

	rendered, err := assembler.Run(cmd.Context(), input)
	if err != nil {
		return err
	}

	printRenderSummary(rendered)
	return nil
}
