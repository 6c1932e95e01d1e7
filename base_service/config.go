package base_service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

const (
	AppName        = "osu-mods"
	ConfigFilename = "config.toml"
	StoreFilename  = "mods.db"
)

var GlobalConfig *Config

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel:     int(zerolog.InfoLevel),
			DefaultMode:  GameModeOsu,
			OutputFormat: OutputJSON,
		},
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/osu-mods/config.toml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFilename)
}

// StorePath returns the configured database path, or a file under $XDG_DATA_HOME.
func StorePath(config Config) (string, error) {
	if config.Store.Path != "" {
		return config.Store.Path, nil
	}
	path, err := xdg.DataFile(filepath.Join(AppName, StoreFilename))
	if err != nil {
		return "", fmt.Errorf("[config] failed to resolve store path: %w", err)
	}
	return path, nil
}

// LoadConfig reads the config at path, DefaultConfigPath when path is empty.
// A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("[config] failed to read %s: %w", path, err)
	}

	config := DefaultConfig()
	err = toml.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("[config] failed to parse %s: %w", path, err)
	}
	if err = ValidateConfig(config); err != nil {
		return Config{}, fmt.Errorf("[config] invalid %s: %w", path, err)
	}
	return config, nil
}

func ValidateConfig(config Config) error {
	if !config.General.DefaultMode.IsValid() {
		return fmt.Errorf("unknown default_mode %d", config.General.DefaultMode)
	}
	switch config.General.OutputFormat {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output_format must be %q or %q, got %q", OutputJSON, OutputYAML, config.General.OutputFormat)
	}
	level := zerolog.Level(config.General.LogLevel)
	if level < zerolog.TraceLevel || level > zerolog.Disabled {
		return fmt.Errorf("log_level %d out of range", config.General.LogLevel)
	}
	return nil
}

func SaveConfig(config *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	content, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("[config] failed to encode config: %w", err)
	}
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("[config] failed to create config directory: %w", err)
	}
	err = os.WriteFile(path, content, 0644)
	if err != nil {
		return fmt.Errorf("[config] failed to write %s: %w", path, err)
	}
	return nil
}
