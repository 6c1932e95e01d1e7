package mods

import (
	"testing"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/stretchr/testify/require"
)

func TestParseGameModsIntermode(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"HDDT", "HDDT"},
		{"DTHD", "HDDT"},
		{"+hd,dt", "HDDT"},
		{"hd dt|hr", "HDHRDT"},
		{"SV2HD", "HDSV2"},
		{"HD10K", "HD10K"},
		{"NM", "NM"},
		{"", "NM"},
		{"72", "HDDT"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			set, err := ParseGameModsIntermode(test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, set.String())
		})
	}

	_, err := ParseGameModsIntermode("HDXYZ")
	var unknown *UnknownModError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "HDXYZ", unknown.Acronym)
	require.NotContains(t, unknown.Error(), "mode")
}

func TestParseGameMods(t *testing.T) {
	mods, err := ParseGameMods("HDDT", GameModeOsu)
	require.NoError(t, err)
	require.Equal(t, "HDDT", mods.String())
	require.NoError(t, mods.ValidateMode(GameModeOsu))

	mods, err = ParseGameMods("10", GameModeOsu)
	require.NoError(t, err)
	require.Equal(t, "EZHD", mods.String())

	_, err = ParseGameMods("4K", GameModeOsu)
	var unknown *UnknownModError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, GameModeOsu, unknown.Mode)

	_, err = ParseGameMods("QQ", GameModeMania)
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, GameModeMania, unknown.Mode)
	require.Contains(t, unknown.Error(), "mania")
}
