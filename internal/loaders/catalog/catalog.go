// Package catalog loads the game configuration JSON exports and merges
// their entity groups into the single lookup catalog the resolver walks.
package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_loader.go -package=catalogmock github.com/sawakaze/skillsheet/internal/loaders/catalog Loader

// Loader reads the three game configuration files.
type Loader interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput names the directory holding characters.json, specials.json,
// and battle.json.
type LoadInput struct {
	Dir string
}

// LoadOutput carries the parsed game data.
type LoadOutput struct {
	Data *GameData
}

// GameData is everything the pipeline needs from the game configuration:
// the hero list in export order, the merged catalog, the id collisions the
// merge produced, and the lowercased entity types flagged as having a
// tooltip description. SpecialProperties keeps the property group as its own
// lookup because property lists reference entries from that group alone,
// never from the merged catalog.
type GameData struct {
	Heroes            []game.Record
	Catalog           game.Catalog
	SpecialProperties game.Catalog
	Collisions        []game.Collision
	ExtraDescTypes    map[string]bool
}

type charactersFile struct {
	CharactersConfig struct {
		Heroes []game.Record `json:"heroes"`
	} `json:"charactersConfig"`
}

type specialsFile struct {
	SpecialsConfig struct {
		CharacterSpecials []game.Record `json:"characterSpecials"`
		SpecialProperties []game.Record `json:"specialProperties"`
	} `json:"specialsConfig"`
}

type battleFile struct {
	BattleConfig struct {
		StatusEffects   []game.Record `json:"statusEffects"`
		Familiars       []game.Record `json:"familiars"`
		FamiliarEffects []game.Record `json:"familiarEffects"`
		PassiveSkills   []game.Record `json:"passiveSkills"`

		StatusEffectsWithExtraDescription     []string `json:"statusEffectsWithExtraDescription"`
		SpecialPropertiesWithExtraDescription []string `json:"specialPropertiesWithExtraDescription"`
		FamiliarEffectsWithExtraDescription   []string `json:"familiarEffectsWithExtraDescription"`
		FamiliarTypesWithExtraDescription     []string `json:"familiarTypesWithExtraDescription"`
	} `json:"battleConfig"`
}

// FileLoader reads the configuration files from disk with sonic, which
// keeps multi-megabyte exports cheap to decode.
type FileLoader struct{}

// NewFileLoader creates a file-backed catalog loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads and merges the three configuration files. All three are
// required input; a missing or unparsable file fails the load.
func (l *FileLoader) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Dir == "" {
		return nil, errors.InvalidArgument("data directory is required")
	}

	var characters charactersFile
	if err := readJSON(filepath.Join(input.Dir, "characters.json"), &characters); err != nil {
		return nil, err
	}
	var specials specialsFile
	if err := readJSON(filepath.Join(input.Dir, "specials.json"), &specials); err != nil {
		return nil, err
	}
	var battle battleFile
	if err := readJSON(filepath.Join(input.Dir, "battle.json"), &battle); err != nil {
		return nil, err
	}

	// Merge order matters: later groups win id collisions, matching the
	// order the game client applies them in.
	merged, collisions := game.BuildCatalog(
		game.CatalogSource{Name: "character_specials", Entries: specials.SpecialsConfig.CharacterSpecials},
		game.CatalogSource{Name: "special_properties", Entries: specials.SpecialsConfig.SpecialProperties},
		game.CatalogSource{Name: "status_effects", Entries: battle.BattleConfig.StatusEffects},
		game.CatalogSource{Name: "familiars", Entries: battle.BattleConfig.Familiars},
		game.CatalogSource{Name: "familiar_effects", Entries: battle.BattleConfig.FamiliarEffects},
		game.CatalogSource{Name: "passive_skills", Entries: battle.BattleConfig.PassiveSkills},
	)
	for _, c := range collisions {
		slog.Warn("catalog id collision",
			"id", c.ID,
			"kept", c.Kept,
			"shadowed", c.Shadowed)
	}

	specialProps := make(game.Catalog, len(specials.SpecialsConfig.SpecialProperties))
	for _, entry := range specials.SpecialsConfig.SpecialProperties {
		if id := entry.Str("id"); id != "" {
			specialProps[id] = entry
		}
	}

	extraTypes := make(map[string]bool)
	for _, group := range [][]string{
		battle.BattleConfig.StatusEffectsWithExtraDescription,
		battle.BattleConfig.SpecialPropertiesWithExtraDescription,
		battle.BattleConfig.FamiliarEffectsWithExtraDescription,
		battle.BattleConfig.FamiliarTypesWithExtraDescription,
	} {
		for _, name := range group {
			extraTypes[strings.ToLower(name)] = true
		}
	}

	slog.Info("game data loaded",
		"heroes", len(characters.CharactersConfig.Heroes),
		"catalog_entries", len(merged),
		"collisions", len(collisions))

	return &LoadOutput{Data: &GameData{
		Heroes:            characters.CharactersConfig.Heroes,
		Catalog:           merged,
		SpecialProperties: specialProps,
		Collisions:        collisions,
		ExtraDescTypes:    extraTypes,
	}}, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("required game data file %s is missing", filepath.Base(path))
		}
		return errors.Wrapf(err, "failed to read %s", filepath.Base(path))
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", filepath.Base(path))
	}
	return nil
}
