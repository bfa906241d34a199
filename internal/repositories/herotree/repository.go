// Package herotree persists resolved hero trees between the integration
// phase and the assembly phase. A stored set must load back with the same
// hero order and the same field values it was saved with.
package herotree

import (
	"context"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=herotreemock github.com/sawakaze/skillsheet/internal/repositories/herotree Repository

// Repository handles hero tree set storage
type Repository interface {
	// SaveSet stores a complete tree set, replacing whatever set was
	// stored before it. SavedAt is stamped by the repository.
	SaveSet(ctx context.Context, input SaveSetInput) (*SaveSetOutput, error)

	// LoadSet retrieves the stored tree set with hero order intact.
	LoadSet(ctx context.Context, input LoadSetInput) (*LoadSetOutput, error)

	// GetTree retrieves a single hero's resolved tree.
	GetTree(ctx context.Context, input GetTreeInput) (*GetTreeOutput, error)
}

// SaveSetInput holds the tree set to store
type SaveSetInput struct {
	Set *game.TreeSet
}

// SaveSetOutput returns the stored set, including the stamped SavedAt
type SaveSetOutput struct {
	Set *game.TreeSet
}

// LoadSetInput is empty today; the store holds one set at a time
type LoadSetInput struct{}

// LoadSetOutput returns the stored tree set
type LoadSetOutput struct {
	Set *game.TreeSet
}

// GetTreeInput identifies the hero to fetch
type GetTreeInput struct {
	HeroID string
}

// GetTreeOutput returns the hero's resolved tree
type GetTreeOutput struct {
	Tree *game.HeroTree
}
