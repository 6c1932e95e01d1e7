package sql

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/MingxuanGame/OsuMods/model"
	. "github.com/MingxuanGame/OsuMods/mods"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "mods.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestSaveAndGetModSet(t *testing.T) {
	db := openTestDatabase(t)

	fl := MustGameMod("FL", GameModeOsu)
	require.NoError(t, fl.SetNumber("size_multiplier", 2.5))
	mods := MustMods(GameModeOsu, "HD", "DT", "CL")
	mods.Insert(fl)

	saved, err := db.SaveModSet("farm", GameModeOsu, mods)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.Id)

	loaded, err := db.GetModSet(saved.Id)
	require.NoError(t, err)
	require.Equal(t, "farm", loaded.Name)
	require.Equal(t, GameModeOsu, loaded.Mode)
	require.True(t, mods.Equal(loaded.Mods), "%s != %s", mods, loaded.Mods)
	require.WithinDuration(t, saved.CreatedAt, loaded.CreatedAt, time.Second)

	size, ok := func() (float64, bool) {
		m, _ := loaded.Mods.Get(Flashlight)
		return m.Number("size_multiplier")
	}()
	require.True(t, ok)
	require.Equal(t, 2.5, size)
}

func TestSaveModSetRejectsOtherMode(t *testing.T) {
	db := openTestDatabase(t)
	_, err := db.SaveModSet("keys", GameModeOsu, MustMods(GameModeMania, "4K"))
	require.ErrorAs(t, err, new(*UnknownModError))
}

func TestListAndDeleteModSets(t *testing.T) {
	db := openTestDatabase(t)
	first, err := db.SaveModSet("a", GameModeOsu, MustMods(GameModeOsu, "HD"))
	require.NoError(t, err)
	_, err = db.SaveModSet("b", GameModeMania, MustMods(GameModeMania, "4K", "HD"))
	require.NoError(t, err)
	_, err = db.SaveModSet("c", GameModeOsu, MustMods(GameModeOsu, "HD"))
	require.NoError(t, err)

	all, err := db.ListModSets(nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mania := GameModeMania
	onlyMania, err := db.ListModSets(&mania)
	require.NoError(t, err)
	require.Len(t, onlyMania, 1)
	require.Equal(t, "HD4K", onlyMania[0].Mods.String())

	found, err := db.FindModSetsByBits(GameModeOsu, 8)
	require.NoError(t, err)
	require.Len(t, found, 2)
	found, err = db.FindModSetsByBits(GameModeMania, 8)
	require.NoError(t, err)
	require.Empty(t, found)

	require.NoError(t, db.DeleteModSet(first.Id))
	require.ErrorIs(t, db.DeleteModSet(first.Id), ErrModSetNotFound)
	_, err = db.GetModSet(first.Id)
	require.ErrorIs(t, err, ErrModSetNotFound)

	require.NoError(t, db.DropAll())
	all, err = db.ListModSets(nil)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCatalogExport(t *testing.T) {
	db := openTestDatabase(t)
	n, err := db.WriteCatalog()
	require.NoError(t, err)
	require.Equal(t, len(Catalog(AllGameModes...)), n)
	require.GreaterOrEqual(t, n, 120)

	again, err := db.WriteCatalog()
	require.NoError(t, err)
	require.Equal(t, n, again)

	for _, mode := range AllGameModes {
		rows, err := db.ReadCatalog(mode)
		require.NoError(t, err)
		require.Equal(t, Catalog(mode), rows)
	}

	rows := Catalog(GameModeOsu)
	var fl CatalogRow
	for _, row := range rows {
		if row.Acronym == "FL" {
			fl = row
		}
	}
	require.Equal(t, "Flashlight", fl.Name)
	require.NotNil(t, fl.Bits)
	require.Equal(t, uint32(1024), *fl.Bits)
	require.Equal(t, CatalogSetting{Name: "follow_delay", Type: "number", Default: 120.0}, fl.Settings[0])
}

func TestFindModSetsByBitsUsesStoredColumn(t *testing.T) {
	db := openTestDatabase(t)
	set, err := db.SaveModSet("classic", GameModeOsu, MustMods(GameModeOsu, "CL"))
	require.NoError(t, err)
	_, err = db.SaveModSet("hidden", GameModeOsu, MustMods(GameModeOsu, "HD"))
	require.NoError(t, err)

	found, err := db.FindModSetsByBits(GameModeOsu, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, set.Id, found[0].Id)

	_, err = db.Exec("UPDATE mod_sets SET bits = ? WHERE id = ?", 1024, set.Id.String())
	require.NoError(t, err)
	found, err = db.FindModSetsByBits(GameModeOsu, 1024)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "classic", found[0].Name)
	found, err = db.FindModSetsByBits(GameModeOsu, 0)
	require.NoError(t, err)
	require.Empty(t, found)
}
