package application

import (
	"context"

	"github.com/MingxuanGame/OsuMods/base_service"
	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/MingxuanGame/OsuMods/sql"
)

// OpenStore opens the mod set database the config points at.
func OpenStore(config Config) (*sql.Database, error) {
	path, err := base_service.StorePath(config)
	if err != nil {
		return nil, err
	}
	logger().Trace().Str("path", path).Msg("Opening store")
	return sql.OpenDatabase(path)
}

// WithStore runs fn with an open store and closes it afterwards.
func WithStore(ctx context.Context, config Config, fn func(context.Context, *sql.Database) error) error {
	db, err := OpenStore(config)
	if err != nil {
		return err
	}
	defer func(db *sql.Database) {
		err := db.Close()
		if err != nil {
			logger().Error().Err(err).Msg("Failed to close database")
		}
	}(db)
	return fn(ctx, db)
}
