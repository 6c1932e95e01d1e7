package sql

import (
	"database/sql"
	"encoding/json"
	"fmt"

	. "github.com/MingxuanGame/OsuMods/model"
	. "github.com/MingxuanGame/OsuMods/mods"
)

// CatalogRow is the exported form of one mod catalog entry.
type CatalogRow struct {
	Mode         GameMode         `json:"mode" yaml:"mode"`
	Acronym      string           `json:"acronym" yaml:"acronym"`
	Name         string           `json:"name" yaml:"name"`
	Kind         string           `json:"type" yaml:"type"`
	Bits         *uint32          `json:"bits,omitempty" yaml:"bits,omitempty"`
	Description  string           `json:"description" yaml:"description"`
	Settings     []CatalogSetting `json:"settings,omitempty" yaml:"settings,omitempty"`
	Incompatible []string         `json:"incompatible_mods" yaml:"incompatible_mods"`
}

type CatalogSetting struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Default any    `json:"default" yaml:"default"`
}

func NewCatalogRow(d *Descriptor) CatalogRow {
	row := CatalogRow{
		Mode:        d.Mode(),
		Acronym:     d.Acronym().String(),
		Name:        d.Intermode().Name(),
		Kind:        d.Kind().String(),
		Description: d.Description(),
	}
	if bits, ok := d.Bits(); ok {
		row.Bits = &bits
	}
	for _, field := range d.Settings() {
		row.Settings = append(row.Settings, CatalogSetting{
			Name:    field.Name,
			Type:    field.Kind.String(),
			Default: field.Default.Interface(),
		})
	}
	for _, acronym := range d.IncompatibleMods() {
		row.Incompatible = append(row.Incompatible, acronym.String())
	}
	return row
}

// Catalog lists the catalog rows of the given modes in canonical order.
func Catalog(modes ...GameMode) []CatalogRow {
	var rows []CatalogRow
	for _, mode := range modes {
		for _, d := range Descriptors(mode) {
			rows = append(rows, NewCatalogRow(d))
		}
	}
	return rows
}

// WriteCatalog replaces the catalog table with every row of every mode.
func (d *Database) WriteCatalog() (int, error) {
	tx, err := d.Begin()
	if err != nil {
		return 0, err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	//goland:noinspection SqlWithoutWhere
	_, err = tx.Exec("DELETE FROM catalog")
	if err != nil {
		return 0, fmt.Errorf("[store] failed to clear catalog: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO catalog (mode, acronym, name, kind, bits, description, settings, incompatible) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer func(stmt *sql.Stmt) {
		err := stmt.Close()
		if err != nil {
			logger().Error().Err(err).Msg("Failed to close statement")
		}
	}(stmt)

	rows := Catalog(AllGameModes...)
	for _, row := range rows {
		settings, err := json.Marshal(row.Settings)
		if err != nil {
			return 0, err
		}
		incompatible, err := json.Marshal(row.Incompatible)
		if err != nil {
			return 0, err
		}
		var bits any
		if row.Bits != nil {
			bits = int64(*row.Bits)
		}
		_, err = stmt.Exec(int(row.Mode), row.Acronym, row.Name, row.Kind, bits, row.Description, string(settings), string(incompatible))
		if err != nil {
			return 0, fmt.Errorf("[store] failed to write %s %s: %w", row.Mode, row.Acronym, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	logger().Info().Int("rows", len(rows)).Msg("Exported mod catalog")
	return len(rows), nil
}

// ReadCatalog reads back the exported rows of mode.
func (d *Database) ReadCatalog(mode GameMode) ([]CatalogRow, error) {
	rows, err := d.Query("SELECT mode, acronym, name, kind, bits, description, settings, incompatible FROM catalog WHERE mode = ? ORDER BY rowid", int(mode))
	if err != nil {
		return nil, fmt.Errorf("[store] failed to read catalog: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger().Error().Err(err).Msg("Failed to close rows")
		}
	}(rows)

	var result []CatalogRow
	for rows.Next() {
		var row CatalogRow
		var bits sql.NullInt64
		var settings, incompatible string
		err := rows.Scan(&row.Mode, &row.Acronym, &row.Name, &row.Kind, &bits, &row.Description, &settings, &incompatible)
		if err != nil {
			return nil, err
		}
		if bits.Valid {
			b := uint32(bits.Int64)
			row.Bits = &b
		}
		if err = json.Unmarshal([]byte(settings), &row.Settings); err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(incompatible), &row.Incompatible); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
