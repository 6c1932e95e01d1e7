package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MingxuanGame/OsuMods/base_service"
)

// GenerateConfig writes the default config to path, DefaultConfigPath when
// empty. An existing file is never overwritten.
func GenerateConfig(path string) (string, error) {
	if path == "" {
		path = base_service.DefaultConfigPath()
	}
	_, err := os.Stat(path)
	if err == nil {
		return path, fmt.Errorf("config file %s already exists", path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return path, err
	}
	config := base_service.DefaultConfig()
	if err = base_service.SaveConfig(&config, path); err != nil {
		return path, err
	}
	logger().Debug().Str("path", path).Msg("Generated config")
	return path, nil
}
