package cli

import (
	"fmt"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/MingxuanGame/OsuMods/mods"
	"github.com/MingxuanGame/OsuMods/sql"
	"github.com/google/uuid"
)

// StoreSave parses input for mode, applies the setting assignments and saves the result as name.
func StoreSave(out Output, db *sql.Database, name, input string, mode GameMode, assignments []string) error {
	if name == "" {
		return fmt.Errorf("a mod set needs a name")
	}
	enabled, err := mods.ParseGameMods(input, mode)
	if err != nil {
		return err
	}
	for _, assignment := range assignments {
		if err = applySetting(&enabled, mode, assignment); err != nil {
			return err
		}
	}
	set, err := db.SaveModSet(name, mode, enabled)
	if err != nil {
		return err
	}
	logger().Info().Str("id", set.Id.String()).Str("name", name).Msg("Saved mod set")
	return out.Print(set)
}

func StoreGet(out Output, db *sql.Database, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid mod set id %q: %w", id, err)
	}
	set, err := db.GetModSet(parsed)
	if err != nil {
		return err
	}
	return out.Print(set)
}

// StoreList prints the saved mod sets, all of them when mode is nil.
func StoreList(out Output, db *sql.Database, mode *GameMode) error {
	sets, err := db.ListModSets(mode)
	if err != nil {
		return err
	}
	if sets == nil {
		sets = []sql.ModSet{}
	}
	return out.Print(sets)
}

func StoreDelete(db *sql.Database, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid mod set id %q: %w", id, err)
	}
	if err = db.DeleteModSet(parsed); err != nil {
		return err
	}
	logger().Info().Str("id", id).Msg("Deleted mod set")
	return nil
}

// StoreExport writes the mod catalog of every mode into the store.
func StoreExport(out Output, db *sql.Database) error {
	n, err := db.WriteCatalog()
	if err != nil {
		return err
	}
	return out.Print(map[string]int{"rows": n})
}
