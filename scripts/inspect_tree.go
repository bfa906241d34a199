// Dumps one hero's resolved tree from the configured store, for checking
// what the template heuristics actually see. Usage:
//
//	go run scripts/inspect_tree.go <heroId>
//
// Reads the redis store when REDIS_ENDPOINT is set, otherwise the snapshot
// file at SKILLSHEET_SNAPSHOT (default out/hero_trees.json).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

type snapshot struct {
	Heroes []struct {
		HeroID string          `json:"heroId"`
		Root   json.RawMessage `json:"root"`
	} `json:"heroes"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: inspect_tree <heroId>")
	}
	heroID := os.Args[1]

	var raw []byte
	if endpoint := os.Getenv("REDIS_ENDPOINT"); endpoint != "" {
		raw = fromRedis(endpoint, heroID)
	} else {
		raw = fromSnapshot(heroID)
	}

	var pretty json.RawMessage
	if err := json.Unmarshal(raw, &pretty); err != nil {
		log.Fatal("stored tree is not valid JSON:", err)
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func fromRedis(endpoint, heroID string) []byte {
	client := redis.NewClient(&redis.Options{
		Addr:     endpoint,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis:", err)
	}

	data, err := client.Get(ctx, "herotree:hero:"+heroID).Result()
	if err == redis.Nil {
		log.Fatalf("no stored tree for hero %q", heroID)
	}
	if err != nil {
		log.Fatal("failed to read tree:", err)
	}

	var tree struct {
		Root json.RawMessage `json:"root"`
	}
	if err := json.Unmarshal([]byte(data), &tree); err != nil {
		log.Fatal("failed to parse stored tree:", err)
	}
	return tree.Root
}

func fromSnapshot(heroID string) []byte {
	path := os.Getenv("SKILLSHEET_SNAPSHOT")
	if path == "" {
		path = "out/hero_trees.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("failed to read snapshot:", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Fatal("failed to parse snapshot:", err)
	}

	for _, hero := range snap.Heroes {
		if hero.HeroID == heroID {
			return hero.Root
		}
	}
	log.Fatalf("no stored tree for hero %q in %s", heroID, path)
	return nil
}
