package game

// Catalog is the merged master lookup: any referenceable id (special,
// property, status effect, familiar, familiar effect, passive skill) to its
// record.
type Catalog map[string]Record

// CatalogSource is one record group prior to merging, in export order.
type CatalogSource struct {
	Name    string
	Entries []Record
}

// Collision notes an id defined by more than one source group. The later
// source wins in the merged catalog.
type Collision struct {
	ID       string
	Kept     string
	Shadowed string
}

// BuildCatalog merges the source groups in order, last write wins, and
// reports every id that appears in more than one group. Entries without an
// id are dropped; duplicate ids inside one group keep the last entry
// without counting as a collision.
func BuildCatalog(sources ...CatalogSource) (Catalog, []Collision) {
	catalog := make(Catalog)
	origin := make(map[string]string)
	var collisions []Collision

	for _, src := range sources {
		for _, entry := range src.Entries {
			id := entry.Str("id")
			if id == "" {
				continue
			}
			if prev, ok := origin[id]; ok && prev != src.Name {
				collisions = append(collisions, Collision{
					ID:       id,
					Kept:     src.Name,
					Shadowed: prev,
				})
			}
			catalog[id] = entry
			origin[id] = src.Name
		}
	}

	return catalog, collisions
}
