package mods

import (
	"testing"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/stretchr/testify/require"
)

func TestClockRate(t *testing.T) {
	tests := []struct {
		acronyms []string
		rate     float64
	}{
		{nil, 1},
		{[]string{"HD", "HR"}, 1},
		{[]string{"DT"}, 1.5},
		{[]string{"NC", "HD"}, 1.5},
		{[]string{"HT"}, 0.75},
		{[]string{"DC"}, 0.75},
		{[]string{"WU"}, 1.5},
		{[]string{"WD"}, 0.75},
		{[]string{"AS"}, 1},
	}
	for _, test := range tests {
		mods := MustMods(GameModeOsu, test.acronyms...)
		require.InDelta(t, test.rate, mods.ClockRate(), 1e-9, mods.String())
	}

	dt := MustGameMod("DT", GameModeOsu)
	require.NoError(t, dt.SetNumber("speed_change", 1.2))
	var mods GameMods
	mods.Insert(dt)
	require.InDelta(t, 1.2, mods.ClockRate(), 1e-9)
}
