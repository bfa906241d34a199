package engine

import (
	"strconv"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// Leaf is one scalar reached while flattening a record. Path is the dotted
// route from the root, list elements contributing their index.
type Leaf struct {
	Path  string
	Value any
}

// Flatten walks rec depth-first in sorted key order and returns every
// scalar leaf with its dotted path, e.g. "statusEffects.0.durationTurns".
func Flatten(rec game.Record) []Leaf {
	var leaves []Leaf
	flattenValue("", rec, &leaves)
	return leaves
}

func flattenValue(path string, v any, leaves *[]Leaf) {
	switch val := v.(type) {
	case game.Record:
		for _, key := range val.SortedKeys() {
			flattenValue(join(path, key), val[key], leaves)
		}
	case map[string]any:
		flattenValue(path, game.Record(val), leaves)
	case []any:
		for i, elem := range val {
			flattenValue(join(path, strconv.Itoa(i)), elem, leaves)
		}
	default:
		*leaves = append(*leaves, Leaf{Path: path, Value: v})
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
