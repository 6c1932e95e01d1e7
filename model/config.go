package model

type GeneralConfig struct {
	LogLevel     int      `toml:"log_level"`
	LogFile      string   `toml:"log_file"`
	DefaultMode  GameMode `toml:"default_mode"`
	OutputFormat string   `toml:"output_format"`
}

type StoreConfig struct {
	// Path of the sqlite database, empty for the default under $XDG_DATA_HOME
	Path string `toml:"path"`
}

type Config struct {
	General GeneralConfig `toml:"general"`
	Store   StoreConfig   `toml:"store"`
}

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)
