package herotree

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
	"github.com/sawakaze/skillsheet/internal/pkg/clock"
)

// FileConfig holds settings for the file-backed repository
type FileConfig struct {
	// Path is the JSON snapshot file, created on first save
	Path  string
	Clock clock.Clock
}

// Validate ensures all required settings are present
func (c *FileConfig) Validate() error {
	if c.Path == "" {
		return errors.InvalidArgument("path is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// fileRepository stores the whole set as one indented JSON document. It is
// the inspectable fallback for runs without a Redis instance; the snapshot
// doubles as a debugging artifact.
type fileRepository struct {
	path  string
	clock clock.Clock
}

// NewFileRepository creates a file-backed hero tree repository
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fileRepository{
		path:  cfg.Path,
		clock: cfg.Clock,
	}, nil
}

// Ensure fileRepository implements Repository
var _ Repository = (*fileRepository)(nil)

func (r *fileRepository) SaveSet(_ context.Context, input SaveSetInput) (*SaveSetOutput, error) {
	if input.Set == nil {
		return nil, errors.InvalidArgument("set is required")
	}
	if input.Set.SetID == "" {
		return nil, errors.InvalidArgument("set ID is required")
	}
	for _, tree := range input.Set.Heroes {
		if tree.HeroID == "" {
			return nil, errors.InvalidArgument("every hero tree needs a hero ID")
		}
	}

	stored := *input.Set
	stored.SavedAt = r.clock.Now()

	data, err := json.MarshalIndent(&stored, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal tree set %s", stored.SetID)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write tree set to %s", r.path)
	}

	return &SaveSetOutput{Set: &stored}, nil
}

func (r *fileRepository) LoadSet(_ context.Context, _ LoadSetInput) (*LoadSetOutput, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("no stored tree set at %s, run an integration first", r.path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tree set from %s", r.path)
	}

	var set game.TreeSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "tree set file %s is not valid JSON", r.path)
	}

	return &LoadSetOutput{Set: &set}, nil
}

func (r *fileRepository) GetTree(ctx context.Context, input GetTreeInput) (*GetTreeOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	loaded, err := r.LoadSet(ctx, LoadSetInput{})
	if err != nil {
		return nil, err
	}

	for i := range loaded.Set.Heroes {
		if loaded.Set.Heroes[i].HeroID == input.HeroID {
			return &GetTreeOutput{Tree: &loaded.Set.Heroes[i]}, nil
		}
	}

	return nil, errors.NotFoundf("no tree stored for hero %s", input.HeroID)
}
