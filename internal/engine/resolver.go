// Package engine implements the deterministic core of the skill sheet
// pipeline: reference resolution, placeholder value resolution, template
// matching, and template rendering. Everything in this package is a pure
// function over in-memory data so the orchestrators can fan heroes out to
// workers without coordination.
package engine

import (
	"strings"

	"github.com/sawakaze/skillsheet/internal/entities/game"
)

// ResolveResult is the output of ResolveHero: the expanded tree plus the
// set of catalog ids that were inlined while building it.
type ResolveResult struct {
	Root        game.Record
	ResolvedIDs []string
}

// ResolveHero deep-clones the hero record and recursively inlines catalog
// entries wherever a reference field points at one. A reference is a map
// key ending in "id" (case-insensitive) whose string value is a catalog id,
// or a list element that is either a catalog id string or a map carrying an
// "id" field known to the catalog.
//
// Map-valued references gain a sibling "<key>_details" field holding the
// resolved catalog entry. String list elements are replaced by the resolved
// entry; map list elements are overlaid with it, catalog fields winning on
// conflict. Each catalog id is expanded at most once per hero, so cycles
// and diamonds terminate with the first occurrence carrying the expansion.
func ResolveHero(hero game.Record, catalog game.Catalog) ResolveResult {
	r := &resolver{catalog: catalog, visited: make(map[string]bool)}
	root := hero.Clone()
	r.walk(root)
	return ResolveResult{Root: root, ResolvedIDs: r.order}
}

type resolver struct {
	catalog game.Catalog
	visited map[string]bool
	order   []string
}

// expand returns a resolved clone of the catalog entry for id, or nil if
// the id is unknown or already expanded elsewhere in this hero.
func (r *resolver) expand(id string) game.Record {
	entry, ok := r.catalog[id]
	if !ok || r.visited[id] {
		return nil
	}
	r.visited[id] = true
	r.order = append(r.order, id)
	clone := entry.Clone()
	r.walk(clone)
	return clone
}

func (r *resolver) walk(rec game.Record) {
	// Sorted key order keeps first-occurrence-wins deterministic when two
	// sibling fields reference the same catalog id.
	for _, key := range rec.SortedKeys() {
		switch val := rec[key].(type) {
		case string:
			if !strings.HasSuffix(strings.ToLower(key), "id") {
				continue
			}
			if details := r.expand(val); details != nil {
				rec[key+"_details"] = details
			}
		case []any:
			r.walkList(val)
		case game.Record:
			r.walk(val)
		}
	}
}

func (r *resolver) walkList(list []any) {
	for i, elem := range list {
		switch v := elem.(type) {
		case string:
			if details := r.expand(v); details != nil {
				list[i] = details
			}
		case game.Record:
			if id, ok := v["id"].(string); ok {
				if details := r.expand(id); details != nil {
					// Catalog fields win over the inline stub.
					for _, k := range details.SortedKeys() {
						v[k] = details[k]
					}
					continue
				}
			}
			r.walk(v)
		case []any:
			r.walkList(v)
		}
	}
}
