package mods

import (
	"testing"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/stretchr/testify/require"
)

func TestDecodeBitsOsu(t *testing.T) {
	mods := DecodeBits(8|2, GameModeOsu)
	require.Equal(t, 2, mods.Len())
	require.Equal(t, "EZHD", mods.String())
	require.Equal(t, []GameModIntermode{Easy, Hidden}, mods.Intermode().Slice())
	require.Equal(t, uint32(10), EncodeBits(mods))

	require.Equal(t, uint32(10), EncodeBits(MustMods(GameModeOsu, "HD", "EZ")))
}

func TestDecodeBitsSingleMod(t *testing.T) {
	for _, mode := range AllGameModes {
		for _, d := range Descriptors(mode) {
			b, ok := d.Bits()
			if !ok {
				continue
			}
			mods := DecodeBits(b, mode)
			require.Equal(t, 1, mods.Len(), "%s %s", mode, d.Acronym())
			m, ok := mods.Get(d.Intermode())
			require.True(t, ok)
			require.Same(t, d, m.Descriptor())
		}
	}
}

func TestBitsRoundTrip(t *testing.T) {
	tests := []struct {
		mode     GameMode
		acronyms []string
	}{
		{GameModeOsu, []string{"HD", "HR", "DT"}},
		{GameModeOsu, []string{"NF", "EZ", "HT", "FL", "SO"}},
		{GameModeTaiko, []string{"HD", "DT", "RX"}},
		{GameModeCtb, []string{"EZ", "HD", "FL"}},
		{GameModeMania, []string{"4K", "FI", "MR", "NF"}},
	}
	for _, test := range tests {
		mods := MustMods(test.mode, test.acronyms...)
		decoded := DecodeBits(EncodeBits(mods), test.mode)
		require.True(t, mods.Equal(decoded), "%s: %s != %s", test.mode, mods, decoded)
	}
}

func TestBitsLossyProjection(t *testing.T) {
	mods := MustMods(GameModeOsu, "HD", "CL", "BL", "DT")
	decoded := DecodeBits(EncodeBits(mods), GameModeOsu)
	require.Equal(t, "HDDT", decoded.String())

	_, ok := mods.CheckedBits()
	require.False(t, ok)
	bits, ok := MustMods(GameModeOsu, "HD", "DT").CheckedBits()
	require.True(t, ok)
	require.Equal(t, uint32(72), bits)
}

func TestDecodeBitsIgnoresUnknown(t *testing.T) {
	mods := DecodeBits(1<<31|1<<15|8, GameModeOsu)
	require.Equal(t, "HD", mods.String())
	require.True(t, DecodeBits(0, GameModeOsu).IsEmpty())
	require.True(t, DecodeBits(8, GameMode(7)).IsEmpty())
}

func TestTryDecodeBits(t *testing.T) {
	_, err := TryDecodeBits(1<<31, GameModeOsu)
	require.ErrorIs(t, err, ErrUnknownBits)
	_, err = TryDecodeBits(1<<15, GameModeOsu)
	require.ErrorIs(t, err, ErrUnknownBits)

	mods, err := TryDecodeBits(1<<15, GameModeMania)
	require.NoError(t, err)
	require.Equal(t, "4K", mods.String())
}

func TestFromBitsIntermode(t *testing.T) {
	set := FromBitsIntermode(1<<15 | 8 | 1<<31)
	require.Equal(t, []GameModIntermode{Hidden, FourKeys}, set.Slice())

	_, err := TryFromBitsIntermode(1 << 31)
	require.ErrorIs(t, err, ErrUnknownBits)
	set, err = TryFromBitsIntermode(2 | 64)
	require.NoError(t, err)
	require.Equal(t, "EZDT", set.String())
}

func TestStableBits(t *testing.T) {
	literal := DecodeBits(576, GameModeOsu)
	require.Equal(t, "DTNC", literal.String())
	require.False(t, literal.IsValid())

	tests := []struct {
		bits uint32
		mode GameMode
		want string
	}{
		{576, GameModeOsu, "NC"},
		{16416, GameModeOsu, "PF"},
		{576 | 8, GameModeTaiko, "HDNC"},
		{64, GameModeOsu, "DT"},
		{32, GameModeMania, "SD"},
	}
	for _, tt := range tests {
		mods := DecodeStableBits(tt.bits, tt.mode)
		require.Equal(t, tt.want, mods.String(), tt.bits)
		require.True(t, mods.IsValid())
		require.Equal(t, tt.bits, EncodeStableBits(mods), tt.want)
	}
}
