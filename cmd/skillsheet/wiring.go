package main

import (
	"fmt"

	"github.com/sawakaze/skillsheet/internal/config"
	"github.com/sawakaze/skillsheet/internal/pkg/clock"
	"github.com/sawakaze/skillsheet/internal/repositories/herotree"
	redisclient "github.com/sawakaze/skillsheet/internal/redis"
)

// newRepository builds the tree store the config selects. The returned
// closer is a no-op for the file store.
func newRepository(cfg *config.Config) (herotree.Repository, func() error, error) {
	clk := clock.New()

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.Redis.Endpoint, &redisclient.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		repo, err := herotree.NewRedisRepository(&herotree.Config{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, client.Close, nil

	default:
		repo, err := herotree.NewFileRepository(&herotree.FileConfig{
			Path:  cfg.SnapshotPath,
			Clock: clk,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil
	}
}
