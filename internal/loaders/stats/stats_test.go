package stats_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawakaze/skillsheet/internal/entities/game"
	"github.com/sawakaze/skillsheet/internal/loaders/stats"
)

func TestFile_HeroStats(t *testing.T) {
	dir := t.TempDir()
	sheet := "hero_id,Name,Max level: Attack,Max level CB1: Attack,Max level CB4: Attack\n" +
		"hero-aria,Aria,700,750,810\n" +
		"hero-bram,Bram,640,,\n" +
		"hero-cleo,,,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hdb4-V12.csv"), []byte(sheet), 0o644))

	lookup, err := stats.NewFile(&stats.FileConfig{Dir: dir})
	require.NoError(t, err)

	t.Run("highest costume bonus tier wins", func(t *testing.T) {
		s := lookup.HeroStats("hero-aria")
		assert.Equal(t, game.HeroStats{Name: "Aria", MaxAttack: 810}, s)
	})

	t.Run("falls back to base attack when tiers are empty", func(t *testing.T) {
		s := lookup.HeroStats("hero-bram")
		assert.Equal(t, game.HeroStats{Name: "Bram", MaxAttack: 640}, s)
	})

	t.Run("blank cells give the zero entry", func(t *testing.T) {
		s := lookup.HeroStats("hero-cleo")
		assert.Equal(t, game.HeroStats{Name: "N/A", MaxAttack: 0}, s)
	})

	t.Run("unknown hero gives the zero entry", func(t *testing.T) {
		s := lookup.HeroStats("hero-nobody")
		assert.Equal(t, game.HeroStats{Name: "N/A", MaxAttack: 0}, s)
	})
}

func TestFile_PicksNewestSheet(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "hdb4-V1.csv")
	current := filepath.Join(dir, "hdb4-V2.csv")
	require.NoError(t, os.WriteFile(old, []byte("hero_id,Name,Max level: Attack\nhero-aria,Old Aria,1\n"), 0o644))
	require.NoError(t, os.WriteFile(current, []byte("hero_id,Name,Max level: Attack\nhero-aria,Aria,700\n"), 0o644))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	lookup, err := stats.NewFile(&stats.FileConfig{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "Aria", lookup.HeroStats("hero-aria").Name)
}

func TestFile_NoSheetIsFine(t *testing.T) {
	lookup, err := stats.NewFile(&stats.FileConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, game.HeroStats{Name: "N/A"}, lookup.HeroStats("hero-aria"))
}
