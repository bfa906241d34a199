// Package integrate implements phase one of the pipeline: load the game
// configuration, expand every hero's catalog references into a
// self-contained tree, and persist the ordered set for phase two.
package integrate

//go:generate mockgen -destination=mock/mock_service.go -package=integratemock github.com/sawakaze/skillsheet/internal/orchestrators/integrate Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/sawakaze/skillsheet/internal/engine"
	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
	"github.com/sawakaze/skillsheet/internal/loaders/catalog"
	"github.com/sawakaze/skillsheet/internal/pkg/idgen"
	"github.com/sawakaze/skillsheet/internal/repositories/herotree"
)

// Service defines the integration phase operations
type Service interface {
	// Run loads the game configuration, resolves every hero, and stores
	// the resulting tree set.
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the integration orchestrator
type Config struct {
	Loader      catalog.Loader
	Repository  herotree.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	loader catalog.Loader
	repo   herotree.Repository
	idGen  idgen.Generator
}

// NewOrchestrator creates a new integration orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		loader: cfg.Loader,
		repo:   cfg.Repository,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// RunInput holds the parameters for an integration run
type RunInput struct {
	// DataDir holds characters.json, specials.json, and battle.json
	DataDir string

	// Workers bounds concurrent hero resolution. Zero or negative means
	// sequential. Output order is the hero export order at any width.
	Workers int
}

// RunOutput reports what the run produced
type RunOutput struct {
	// Set is the stored tree set, including its stamped save time
	Set *game.TreeSet

	// Data is the loaded game configuration, reusable by a same-process
	// assembly phase without a second load
	Data *catalog.GameData

	// ResolvedRefs counts catalog references expanded across all heroes
	ResolvedRefs int
}

func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DataDir == "" {
		return nil, errors.InvalidArgument("data directory is required")
	}

	loaded, err := o.loader.Load(ctx, &catalog.LoadInput{Dir: input.DataDir})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load game data")
	}
	data := loaded.Data

	// Heroes without an id cannot be stored or looked up later; drop them
	// here rather than let the repository reject the whole set.
	heroes := make([]game.Record, 0, len(data.Heroes))
	for _, hero := range data.Heroes {
		if hero.Str("id") == "" {
			slog.WarnContext(ctx, "skipping hero without id")
			continue
		}
		heroes = append(heroes, hero)
	}

	workers := input.Workers
	if workers < 1 {
		workers = 1
	}

	trees := make([]game.HeroTree, len(heroes))
	refs := make([]int, len(heroes))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(workers)
	for idx, hero := range heroes {
		p.Go(func() {
			result := engine.ResolveHero(hero, data.Catalog)
			mu.Lock()
			trees[idx] = game.HeroTree{HeroID: hero.Str("id"), Root: result.Root}
			refs[idx] = len(result.ResolvedIDs)
			mu.Unlock()
		})
	}
	p.Wait()

	resolvedRefs := 0
	for _, n := range refs {
		resolvedRefs += n
	}

	set := &game.TreeSet{
		SetID:  o.idGen.Generate(),
		Heroes: trees,
	}

	saved, err := o.repo.SaveSet(ctx, herotree.SaveSetInput{Set: set})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store tree set")
	}

	slog.InfoContext(ctx, "integration run complete",
		"set_id", saved.Set.SetID,
		"heroes", len(saved.Set.Heroes),
		"resolved_refs", resolvedRefs,
		"collisions", len(data.Collisions),
		"workers", workers,
	)

	return &RunOutput{
		Set:          saved.Set,
		Data:         data,
		ResolvedRefs: resolvedRefs,
	}, nil
}
