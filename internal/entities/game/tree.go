package game

import "time"

// HeroTree is one hero record with every catalog reference expanded in
// place. This is the phase boundary: phase one produces trees, phase two
// consumes them without touching the catalogs again.
type HeroTree struct {
	HeroID string `json:"heroId"`
	Root   Record `json:"root"`
}

// TreeSet is the ordered collection of resolved hero trees from one
// integration run. Order matches the source hero list and is preserved by
// every store implementation.
type TreeSet struct {
	SetID   string     `json:"setId"`
	SavedAt time.Time  `json:"savedAt"`
	Heroes  []HeroTree `json:"heroes"`
}

// HeroStats is the display name and representative attack stat for one hero,
// as read from the stats sheet. Zero value means the hero was not listed.
type HeroStats struct {
	Name      string
	MaxAttack int
}
