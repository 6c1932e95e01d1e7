package sql

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MingxuanGame/OsuMods/base_service"
	. "github.com/MingxuanGame/OsuMods/model"
	. "github.com/MingxuanGame/OsuMods/mods"
	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/rs/zerolog"
)

func logger() *zerolog.Logger {
	return base_service.GetLogger("sql")
}

var ErrModSetNotFound = errors.New("mod set not found")

type Database struct {
	*sql.DB
}

// ModSet is a named collection of mods kept in the store.
type ModSet struct {
	Id        uuid.UUID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Mode      GameMode  `json:"mode" yaml:"mode"`
	Mods      GameMods  `json:"mods" yaml:"mods"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// OpenDatabase opens the sqlite file at path and creates missing tables.
func OpenDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("[store] failed to open %s: %w", path, err)
	}
	d := &Database{db}
	if err = d.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger().Debug().Str("path", path).Msg("Opened store")
	return d, nil
}

func (d *Database) createTables() error {
	_, err := d.Exec(`CREATE TABLE IF NOT EXISTS mod_sets (
		id TEXT NOT NULL
			CONSTRAINT mod_sets_pk
				PRIMARY KEY,
		name TEXT NOT NULL,
		mode INTEGER NOT NULL,
		bits INTEGER NOT NULL,
		mods TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("[store] failed to create mod_sets: %w", err)
	}
	_, err = d.Exec("CREATE INDEX IF NOT EXISTS mod_sets_mode_bits ON mod_sets (mode, bits)")
	if err != nil {
		return fmt.Errorf("[store] failed to create mod_sets index: %w", err)
	}
	_, err = d.Exec(`CREATE TABLE IF NOT EXISTS catalog (
		mode INTEGER NOT NULL,
		acronym TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		bits INTEGER,
		description TEXT,
		settings TEXT,
		incompatible TEXT,
		CONSTRAINT catalog_pk PRIMARY KEY (mode, acronym)
	)`)
	if err != nil {
		return fmt.Errorf("[store] failed to create catalog: %w", err)
	}
	return nil
}

// SaveModSet stores mods under a new id.
func (d *Database) SaveModSet(name string, mode GameMode, mods GameMods) (ModSet, error) {
	if err := mods.ValidateMode(mode); err != nil {
		return ModSet{}, fmt.Errorf("[store] failed to save %q: %w", name, err)
	}
	data, err := json.Marshal(mods)
	if err != nil {
		return ModSet{}, fmt.Errorf("[store] failed to encode %q: %w", name, err)
	}
	set := ModSet{
		Id:        uuid.New(),
		Name:      name,
		Mode:      mode,
		Mods:      mods.Clone(),
		CreatedAt: time.Now().Truncate(time.Second),
	}
	_, err = d.Exec("INSERT INTO mod_sets (id, name, mode, bits, mods, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		set.Id.String(), set.Name, int(set.Mode), int64(EncodeBits(mods)), string(data), set.CreatedAt.Unix())
	if err != nil {
		return ModSet{}, fmt.Errorf("[store] failed to save %q: %w", name, err)
	}
	logger().Trace().Str("id", set.Id.String()).Str("mods", mods.String()).Msg("Saved mod set")
	return set, nil
}

func scanModSet(scan func(dest ...any) error) (ModSet, error) {
	var set ModSet
	var id, data string
	var bits, created int64
	err := scan(&id, &set.Name, &set.Mode, &bits, &data, &created)
	if err != nil {
		return ModSet{}, err
	}
	set.Id, err = uuid.Parse(id)
	if err != nil {
		return ModSet{}, fmt.Errorf("[store] invalid mod set id %q: %w", id, err)
	}
	set.Mods, err = DecodeGameMods([]byte(data), set.Mode)
	if err != nil {
		return ModSet{}, fmt.Errorf("[store] failed to decode mod set %s: %w", id, err)
	}
	if stored := uint32(bits); stored != EncodeBits(set.Mods) {
		logger().Warn().Str("id", id).Uint32("bits", stored).Msg("Stored bits do not match stored mods")
	}
	set.CreatedAt = time.Unix(created, 0)
	return set, nil
}

func (d *Database) GetModSet(id uuid.UUID) (ModSet, error) {
	row := d.QueryRow("SELECT id, name, mode, bits, mods, created_at FROM mod_sets WHERE id = ?", id.String())
	set, err := scanModSet(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return ModSet{}, fmt.Errorf("[store] %w: %s", ErrModSetNotFound, id)
	}
	return set, err
}

// ListModSets returns every mod set, optionally only those of one mode, oldest first.
func (d *Database) ListModSets(mode *GameMode) ([]ModSet, error) {
	if mode == nil {
		return d.queryModSets("")
	}
	return d.queryModSets("WHERE mode = ?", int(*mode))
}

// FindModSetsByBits returns the mod sets of mode whose stored legacy bitmask equals bits.
func (d *Database) FindModSetsByBits(mode GameMode, bits uint32) ([]ModSet, error) {
	return d.queryModSets("WHERE mode = ? AND bits = ?", int(mode), int64(bits))
}

func (d *Database) queryModSets(where string, args ...any) ([]ModSet, error) {
	rows, err := d.Query("SELECT id, name, mode, bits, mods, created_at FROM mod_sets "+where+" ORDER BY created_at, name", args...)
	if err != nil {
		return nil, fmt.Errorf("[store] failed to list mod sets: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger().Error().Err(err).Msg("Failed to close rows")
		}
	}(rows)

	var sets []ModSet
	for rows.Next() {
		set, err := scanModSet(rows.Scan)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func (d *Database) DeleteModSet(id uuid.UUID) error {
	result, err := d.Exec("DELETE FROM mod_sets WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("[store] failed to delete %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("[store] failed to delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("[store] %w: %s", ErrModSetNotFound, id)
	}
	return nil
}

//goland:noinspection SqlWithoutWhere
func (d *Database) DropAll() error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	_, err = tx.Exec("DROP TABLE IF EXISTS mod_sets;")
	if err != nil {
		return err
	}
	_, err = tx.Exec("DROP TABLE IF EXISTS catalog;")
	if err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	return d.createTables()
}
