package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sawakaze/skillsheet/internal/loaders/catalog"
	"github.com/sawakaze/skillsheet/internal/orchestrators/integrate"
	"github.com/sawakaze/skillsheet/internal/pkg/idgen"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve hero catalog references and store the trees",
	Long: `Load the game configuration, expand every hero's catalog references
into a self-contained tree, and persist the ordered tree set to the
configured store. Rendering can then be re-run against the stored trees
without repeating this step.`,
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	orch, err := integrate.NewOrchestrator(&integrate.Config{
		Loader:      catalog.NewFileLoader(),
		Repository:  repo,
		IDGenerator: idgen.NewUUID("treeset"),
	})
	if err != nil {
		return err
	}

	out, err := orch.Run(cmd.Context(), &integrate.RunInput{
		DataDir: cfg.Data.Dir,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Resolved %d heroes (%d references) into set %s\n",
		len(out.Set.Heroes), out.ResolvedRefs, out.Set.SetID)
	return nil
}
