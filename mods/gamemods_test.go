package mods

import (
	"slices"
	"testing"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/stretchr/testify/require"
)

func TestNewGameMod(t *testing.T) {
	m, ok := NewGameMod("HD", GameModeOsu)
	require.True(t, ok)
	require.Equal(t, "HD", m.Acronym().String())
	require.Equal(t, GameModeOsu, m.Mode())
	require.Equal(t, KindDifficultyIncrease, m.Kind())
	bits, ok := m.Bits()
	require.True(t, ok)
	require.Equal(t, uint32(8), bits)

	_, ok = NewGameMod("XX", GameModeOsu)
	require.False(t, ok)
	_, ok = NewGameMod("4K", GameModeOsu)
	require.False(t, ok)
	require.Panics(t, func() { MustGameMod("4K", GameModeOsu) })
}

func TestGameModSettings(t *testing.T) {
	fl := MustGameMod("FL", GameModeOsu)
	require.False(t, fl.HasSettings())
	require.Equal(t, []string{"follow_delay", "size_multiplier", "combo_based_size"}, fl.SettingNames())
	def, ok := fl.Setting("follow_delay")
	require.True(t, ok)
	require.Equal(t, NumberValue(120), def)
	_, ok = fl.Get("follow_delay")
	require.False(t, ok)

	changed := fl
	require.NoError(t, changed.SetNumber("size_multiplier", 2))
	require.False(t, fl.HasSettings())
	require.True(t, changed.HasSettings())
	require.False(t, fl.Equal(changed))

	again := changed
	require.NoError(t, again.SetNumber("size_multiplier", 3))
	size, _ := changed.Number("size_multiplier")
	require.Equal(t, 2.0, size)

	again.ClearSetting("size_multiplier")
	require.False(t, again.HasSettings())
	require.True(t, again.Equal(fl))

	require.ErrorIs(t, fl.SetBool("nope", true), ErrUnknownSetting)
	var typeErr *SettingTypeError
	require.ErrorAs(t, fl.SetBool("size_multiplier", true), &typeErr)
	require.Equal(t, SettingNumber, typeErr.Want)
}

func TestGameModCompatibility(t *testing.T) {
	ez := MustGameMod("EZ", GameModeOsu)
	hr := MustGameMod("HR", GameModeOsu)
	hd := MustGameMod("HD", GameModeOsu)
	require.False(t, ez.IsCompatibleWith(hr))
	require.False(t, hr.IsCompatibleWith(ez))
	require.True(t, ez.IsCompatibleWith(hd))
}

func TestGameModsInsertReplaces(t *testing.T) {
	first := MustGameMod("FL", GameModeOsu)
	require.NoError(t, first.SetNumber("size_multiplier", 2.5))
	second := MustGameMod("FL", GameModeOsu)
	require.NoError(t, second.SetNumber("size_multiplier", 1.5))

	var mods GameMods
	mods.Insert(first)
	mods.Insert(second)
	require.Equal(t, 1, mods.Len())
	fl, ok := mods.Get(Flashlight)
	require.True(t, ok)
	size, _ := fl.Number("size_multiplier")
	require.Equal(t, 1.5, size)

	mods.Insert(GameMod{})
	require.Equal(t, 1, mods.Len())
}

func TestGameModsOrdering(t *testing.T) {
	inputs := []string{"CL", "DT", "BL", "HD", "EZ", "TP"}
	for i := 0; i < len(inputs); i++ {
		var mods GameMods
		rotated := append(slices.Clone(inputs[i:]), inputs[:i]...)
		for _, acronym := range rotated {
			mods.Insert(MustGameMod(acronym, GameModeOsu))
		}
		require.Equal(t, "EZHDDTTPBLCL", mods.String())
	}

	var acronyms []string
	for m := range MustMods(GameModeOsu, "DT", "HD").All() {
		acronyms = append(acronyms, m.Acronym().String())
	}
	require.Equal(t, []string{"HD", "DT"}, acronyms)
}

func TestGameModsMixedModes(t *testing.T) {
	var mods GameMods
	mods.Insert(MustGameMod("HD", GameModeMania))
	mods.Insert(MustGameMod("HD", GameModeOsu))
	require.Equal(t, 2, mods.Len())
	require.Equal(t, GameModeOsu, mods.Slice()[0].Mode())

	var unknown *UnknownModError
	require.ErrorAs(t, mods.ValidateMode(GameModeOsu), &unknown)
	require.NoError(t, MustMods(GameModeOsu, "HD").ValidateMode(GameModeOsu))
}

func TestGameModsRemove(t *testing.T) {
	mods := MustMods(GameModeOsu, "HD", "DT", "CL")
	require.True(t, mods.Contains(Hidden))
	require.True(t, mods.ContainsAcronym("CL"))
	require.True(t, mods.ContainsAny(Easy, DoubleTime))
	require.False(t, mods.ContainsAny(Easy, HardRock))

	clone := mods.Clone()
	require.True(t, mods.Remove(Hidden))
	require.False(t, mods.Remove(Hidden))
	require.True(t, mods.RemoveMod(MustGameMod("CL", GameModeOsu)))
	require.Equal(t, "DT", mods.String())
	require.Equal(t, "HDDTCL", clone.String())

	require.Equal(t, "NM", NewGameMods().String())
	require.True(t, NewGameMods().IsEmpty())
}

func TestNewGameModsFrom(t *testing.T) {
	_, err := NewGameModsFrom(GameModeOsu, "hd")
	require.ErrorIs(t, err, ErrInvalidAcronymChars)
	_, err = NewGameModsFrom(GameModeOsu, "HDDTX")
	require.ErrorIs(t, err, ErrInvalidAcronymLength)
	_, err = NewGameModsFrom(GameModeOsu, "4K")
	require.ErrorAs(t, err, new(*UnknownModError))

	mods, err := NewGameModsFrom(GameModeMania, "4K", "MR")
	require.NoError(t, err)
	require.Equal(t, "4KMR", mods.String())
}

func TestGameModsIntermodeSet(t *testing.T) {
	set := MustIntermode("DT", "HD")
	require.False(t, set.Insert(Hidden))
	require.True(t, set.Insert(Classic))
	require.Equal(t, "HDDTCL", set.String())
	require.Equal(t, uint32(72), set.Bits())

	other := MustIntermode("HD", "HR")
	require.Equal(t, "HDHRDTCL", set.Union(other).String())
	require.Equal(t, "HD", set.Intersection(other).String())

	require.Equal(t, "HDDT", MustIntermode("HD", "DT", "TP").WithMode(GameModeTaiko).String())
	_, err := MustIntermode("4K", "HD").TryWithMode(GameModeOsu)
	var unknown *UnknownModError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "4K", unknown.Acronym)

	require.True(t, set.Remove(Classic))
	require.Equal(t, []string{"HD", "DT"}, set.Acronyms())
	require.Equal(t, "NM", NewGameModsIntermode().String())
}

func TestZeroGameMod(t *testing.T) {
	mods := MustMods(GameModeOsu, "HD")
	m, ok := mods.Get(DoubleTime)
	require.False(t, ok)
	require.True(t, m.IsZero())

	require.True(t, m.Acronym().IsZero())
	require.Empty(t, m.Description())
	require.False(t, m.Mode().IsValid())
	_, ok = m.Bits()
	require.False(t, ok)
	require.Empty(t, m.IncompatibleMods())
	require.Empty(t, m.SettingNames())
	require.Empty(t, m.SettingFields())
	require.False(t, m.HasSettings())
	_, ok = m.Setting("speed_change")
	require.False(t, ok)
	require.True(t, m.IsCompatibleWith(MustGameMod("HD", GameModeOsu)))
	require.Equal(t, "<invalid mod>", m.String())

	require.ErrorIs(t, m.SetNumber("speed_change", 1.2), ErrZeroGameMod)
	m.ClearSetting("speed_change")
	require.True(t, m.Equal(GameMod{}))
}
