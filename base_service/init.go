package base_service

import (
	"github.com/rs/zerolog"

	. "github.com/MingxuanGame/OsuMods/model"
)

// Init loads the config at path and sets up logging from it. When the config
// cannot be loaded the defaults are used and the error is returned after the
// logger is ready.
func Init(path string) (Config, error) {
	config, loadErr := LoadConfig(path)
	if loadErr != nil {
		config = DefaultConfig()
	}
	GlobalConfig = &config
	err := CreateLog(zerolog.Level(config.General.LogLevel), config.General.LogFile)
	if err != nil {
		return config, err
	}
	return config, loadErr
}
