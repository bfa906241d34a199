package herotree

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
	"github.com/sawakaze/skillsheet/internal/pkg/clock"
	redisclient "github.com/sawakaze/skillsheet/internal/redis"
)

const (
	// setKey holds the set header (ID and save time)
	setKey = "herotree:set"
	// orderKey holds the hero IDs in source order
	orderKey = "herotree:order"
	// heroKeyPrefix prefixes one key per resolved hero tree
	heroKeyPrefix = "herotree:hero:"
)

// setHeader is the stored set metadata. Hero trees live under their own
// keys so a single hero can be fetched without loading the whole set.
type setHeader struct {
	SetID   string    `json:"setId"`
	SavedAt time.Time `json:"savedAt"`
}

// Config holds dependencies for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed hero tree repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func heroKey(heroID string) string {
	return heroKeyPrefix + heroID
}

func (r *redisRepository) SaveSet(ctx context.Context, input SaveSetInput) (*SaveSetOutput, error) {
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

	header, err := json.Marshal(setHeader{
		SetID:   stored.SetID,
		SavedAt: stored.SavedAt,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal header for set %s", stored.SetID)
	}

	// Hero keys from the previous set must not survive a save with fewer
	// heroes, so collect them before the pipeline replaces the order list.
	stale, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "failed to read existing hero order")
	}

	pipe := r.client.TxPipeline()
	for _, id := range stale {
		pipe.Del(ctx, heroKey(id))
	}
	pipe.Del(ctx, orderKey)
	pipe.Set(ctx, setKey, header, 0)
	for _, tree := range stored.Heroes {
		data, err := json.Marshal(tree)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal hero tree %s", tree.HeroID)
		}
		pipe.Set(ctx, heroKey(tree.HeroID), data, 0)
		pipe.RPush(ctx, orderKey, tree.HeroID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store tree set %s", stored.SetID)
	}

	return &SaveSetOutput{Set: &stored}, nil
}

func (r *redisRepository) LoadSet(ctx context.Context, _ LoadSetInput) (*LoadSetOutput, error) {
	data, err := r.client.Get(ctx, setKey).Result()
	if err == redis.Nil {
		return nil, errors.NotFound("no stored tree set, run an integration first")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tree set header")
	}

	var header setHeader
	if err := json.Unmarshal([]byte(data), &header); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal tree set header")
	}

	ids, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "failed to read hero order")
	}

	set := &game.TreeSet{
		SetID:   header.SetID,
		SavedAt: header.SavedAt,
		Heroes:  make([]game.HeroTree, 0, len(ids)),
	}
	for _, id := range ids {
		tree, err := r.getTree(ctx, id)
		if errors.IsNotFound(err) {
			return nil, errors.DataLossf("hero %s is in the order list but has no tree", id)
		}
		if err != nil {
			return nil, err
		}
		set.Heroes = append(set.Heroes, *tree)
	}

	return &LoadSetOutput{Set: set}, nil
}

func (r *redisRepository) GetTree(ctx context.Context, input GetTreeInput) (*GetTreeOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	tree, err := r.getTree(ctx, input.HeroID)
	if err != nil {
		return nil, err
	}

	return &GetTreeOutput{Tree: tree}, nil
}

func (r *redisRepository) getTree(ctx context.Context, heroID string) (*game.HeroTree, error) {
	data, err := r.client.Get(ctx, heroKey(heroID)).Result()
	if err == redis.Nil {
		return nil, errors.NotFoundf("no tree stored for hero %s", heroID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tree for hero %s", heroID)
	}

	var tree game.HeroTree
	if err := json.Unmarshal([]byte(data), &tree); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal tree for hero %s", heroID)
	}

	return &tree, nil
}
