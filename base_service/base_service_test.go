package base_service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFilename)
	config := DefaultConfig()
	config.General.DefaultMode = GameModeMania
	config.General.OutputFormat = OutputYAML
	config.Store.Path = "/tmp/mods.db"
	require.NoError(t, SaveConfig(&config, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "[general]")
	require.Contains(t, string(content), "default_mode")
	require.Contains(t, string(content), "mania")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, config, loaded)

	storePath, err := StorePath(loaded)
	require.NoError(t, err)
	require.Equal(t, "/tmp/mods.db", storePath)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("[general]\ndefault_mode = 'taiko'\n"), 0644))
	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, GameModeTaiko, config.General.DefaultMode)
	require.Equal(t, OutputJSON, config.General.OutputFormat)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax": "[general\n",
		"mode":   "[general]\ndefault_mode = 'tetris'\n",
		"format": "[general]\noutput_format = 'xml'\n",
		"level":  "[general]\nlog_level = 42\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFilename)
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := LoadConfig(path)
			require.Error(t, err)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "mods.log")
	require.NoError(t, createLog(&buf, zerolog.DebugLevel, file))
	t.Cleanup(CloseLog)

	logger := GetLogger("test")
	logger.Debug().Msg("hello")
	logger.Trace().Msg("hidden")
	require.Contains(t, buf.String(), "| DEBUG |")
	require.Contains(t, buf.String(), "hello")
	require.NotContains(t, buf.String(), "hidden")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(content), "module=test")
}
