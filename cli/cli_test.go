package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MingxuanGame/OsuMods/base_service"
	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/MingxuanGame/OsuMods/mods"
	"github.com/MingxuanGame/OsuMods/sql"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestOutput(t *testing.T, format string) (Output, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	out, err := NewOutput(&buf, format)
	require.NoError(t, err)
	return out, &buf
}

func TestNewOutput(t *testing.T) {
	out, err := NewOutput(os.Stdout, "")
	require.NoError(t, err)
	require.Equal(t, OutputJSON, out.Format)
	_, err = NewOutput(os.Stdout, "xml")
	require.Error(t, err)
}

func TestDecodeBitsCommand(t *testing.T) {
	out, buf := newTestOutput(t, OutputJSON)
	require.NoError(t, DecodeBits(out, 10, GameModeOsu, false))

	var view struct {
		Mode     int               `json:"mode"`
		Acronyms string            `json:"acronyms"`
		Bits     uint32            `json:"bits"`
		Mods     []json.RawMessage `json:"mods"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	require.Equal(t, "EZHD", view.Acronyms)
	require.Equal(t, uint32(10), view.Bits)
	require.Len(t, view.Mods, 2)

	require.ErrorIs(t, DecodeBits(out, 1<<15, GameModeOsu, true), mods.ErrUnknownBits)
}

func TestDecodeJSONCommandYAML(t *testing.T) {
	out, buf := newTestOutput(t, OutputYAML)
	data := []byte(`[{"acronym":"DT"},{"acronym":"FL","settings":{"size_multiplier":2.5}}]`)
	require.NoError(t, DecodeJSON(out, data, GameModeOsu))

	var view struct {
		Mode      string  `yaml:"mode"`
		Acronyms  string  `yaml:"acronyms"`
		ClockRate float64 `yaml:"clock_rate"`
		Mods      []struct {
			Acronym  string         `yaml:"acronym"`
			Settings map[string]any `yaml:"settings"`
		} `yaml:"mods"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
	require.Equal(t, "osu", view.Mode)
	require.Equal(t, "DTFL", view.Acronyms)
	require.Equal(t, 1.5, view.ClockRate)
	require.Len(t, view.Mods, 2)
	require.Nil(t, view.Mods[0].Settings)
	require.Equal(t, 2.5, view.Mods[1].Settings["size_multiplier"])

	require.ErrorAs(t, DecodeJSON(out, []byte(`[{"acronym":"ZZ"}]`), GameModeOsu), new(*mods.UnknownModError))
}

func TestEncodeCommands(t *testing.T) {
	out, buf := newTestOutput(t, OutputJSON)
	require.NoError(t, EncodeBits(out, "HD,DT,CL", GameModeOsu))
	var bits BitsView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &bits))
	require.Equal(t, BitsView{Acronyms: "HDDTCL", Bits: 72, WithoutBits: []string{"CL"}}, bits)

	buf.Reset()
	require.NoError(t, EncodeJSON(out, "DTFL", GameModeOsu, []string{"fl.size_multiplier=2.5", "DT.adjust_pitch=true"}))
	require.JSONEq(t, `[{"acronym":"DT","settings":{"adjust_pitch":true}},{"acronym":"FL","settings":{"size_multiplier":2.5}}]`, buf.String())

	for _, assignment := range []string{"FL.size_multiplier", "FLsize=1", "HR.x=1", "FL.nope=1", "FL.size_multiplier=big", "ZZ.x=1"} {
		require.Error(t, EncodeJSON(out, "DTFL", GameModeOsu, []string{assignment}), assignment)
	}
}

func TestParseCommand(t *testing.T) {
	out, buf := newTestOutput(t, OutputJSON)
	require.NoError(t, Parse(out, "4KHD"))
	var view ParseView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	require.Equal(t, []string{"HD", "4K"}, view.Acronyms)
	require.Equal(t, []string{"Hidden", "FourKeys"}, view.Names)
	require.Equal(t, []string{"mania"}, view.Modes)
}

func TestValidateCommand(t *testing.T) {
	out, buf := newTestOutput(t, OutputJSON)
	require.NoError(t, Validate(out, "HDDT", GameModeOsu))
	require.Contains(t, buf.String(), `"valid": true`)

	buf.Reset()
	err := Validate(out, "EZHR", GameModeOsu)
	require.ErrorIs(t, err, ErrInvalidMods)
	require.Contains(t, buf.String(), "EZ is incompatible with HR")
}

func TestListCommand(t *testing.T) {
	out, buf := newTestOutput(t, OutputJSON)
	require.NoError(t, List(out, GameModeTaiko, "automation", false))
	var rows []sql.CatalogRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, "Automation", row.Kind)
	}

	buf.Reset()
	require.NoError(t, List(out, GameModeMania, "", true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Contains(t, lines[0], "mania mods")
	require.Len(t, lines, len(sql.Catalog(GameModeMania))+1)

	require.Error(t, List(out, GameModeOsu, "scary", false))
}

func TestStoreCommands(t *testing.T) {
	db, err := sql.OpenDatabase(filepath.Join(t.TempDir(), "mods.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	out, buf := newTestOutput(t, OutputJSON)
	require.NoError(t, StoreSave(out, db, "slow", "HTFL", GameModeOsu, []string{"HT.speed_change=0.6"}))
	var saved struct {
		Id   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &saved))
	require.Equal(t, "slow", saved.Name)

	buf.Reset()
	require.NoError(t, StoreGet(out, db, saved.Id))
	require.Contains(t, buf.String(), `"speed_change": 0.6`)

	buf.Reset()
	require.NoError(t, StoreList(out, db, nil))
	require.Contains(t, buf.String(), saved.Id)

	taiko := GameModeTaiko
	buf.Reset()
	require.NoError(t, StoreList(out, db, &taiko))
	require.JSONEq(t, `[]`, buf.String())

	buf.Reset()
	require.NoError(t, StoreExport(out, db))
	require.Contains(t, buf.String(), `"rows"`)

	require.NoError(t, StoreDelete(db, saved.Id))
	require.ErrorIs(t, StoreGet(out, db, saved.Id), sql.ErrModSetNotFound)
	require.Error(t, StoreGet(out, db, "not-a-uuid"))
	require.Error(t, StoreSave(out, db, "", "HD", GameModeOsu, nil))
}

func TestGenerateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osu-mods", "config.toml")
	written, err := GenerateConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, written)
	require.FileExists(t, path)

	_, err = GenerateConfig(path)
	require.Error(t, err)
}

func TestLogsReachConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "osu-mods.log")
	require.NoError(t, base_service.CreateLog(zerolog.DebugLevel, logFile))
	t.Cleanup(func() {
		base_service.CloseLog()
		_ = base_service.CreateLog(zerolog.InfoLevel, "")
	})

	_, err := GenerateConfig(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "| DEBUG |")
	require.Contains(t, string(content), "Generated config")
	require.Contains(t, string(content), "module=cli")
}
