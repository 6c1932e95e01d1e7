package mods

import (
	"fmt"

	. "github.com/MingxuanGame/OsuMods/model"
)

// EncodeBits is the legacy bitmask of mods. Mods without a legacy bit and all
// settings are lost.
func EncodeBits(mods GameMods) uint32 {
	return mods.Bits()
}

// DecodeBits returns the default-settings mods of mode whose legacy bit is set.
// Bits that no mod of mode uses are ignored. Every bit is read on its own, so
// osu!stable's 576 for NC yields DT and NC; use DecodeStableBits for such masks.
func DecodeBits(bits uint32, mode GameMode) GameMods {
	var mods GameMods
	if !mode.IsValid() {
		return mods
	}
	for _, d := range catalogs[mode].rows {
		b, ok := d.Bits()
		if ok && bits&b != 0 {
			mods.mods = append(mods.mods, GameMod{desc: d})
		}
	}
	return mods
}

// TryDecodeBits is like DecodeBits but fails when a set bit has no mod in mode.
func TryDecodeBits(bits uint32, mode GameMode) (GameMods, error) {
	mods := DecodeBits(bits, mode)
	if rest := bits &^ mods.Bits(); rest != 0 {
		return GameMods{}, fmt.Errorf("%w %d for mode %s", ErrUnknownBits, rest, mode)
	}
	return mods, nil
}

// stableImplied pairs a mod with the mod whose bit osu!stable also sets for it.
var stableImplied = [...]struct{ mod, implied GameModIntermode }{
	{Nightcore, DoubleTime},
	{Perfect, SuddenDeath},
}

// DecodeStableBits reads a bitmask written by osu!stable or the v1 API, where
// NC is sent as NC|DT and PF as PF|SD. The implied DT and SD are dropped, so
// the result passes IsValid where DecodeBits would report a conflict.
func DecodeStableBits(bits uint32, mode GameMode) GameMods {
	mods := DecodeBits(bits, mode)
	for _, pair := range stableImplied {
		if mods.Contains(pair.mod) {
			mods.Remove(pair.implied)
		}
	}
	return mods
}

// EncodeStableBits is EncodeBits with the implied DT and SD bits of NC and PF set.
func EncodeStableBits(mods GameMods) uint32 {
	bits := EncodeBits(mods)
	for _, pair := range stableImplied {
		if mods.Contains(pair.mod) {
			b, _ := pair.implied.Bits()
			bits |= b
		}
	}
	return bits
}

// FromBitsIntermode returns every identity whose legacy bit is set, unknown bits are ignored.
func FromBitsIntermode(bits uint32) GameModsIntermode {
	var set GameModsIntermode
	for _, id := range intermodesByBitsAsc {
		b, _ := id.Bits()
		if bits&b != 0 {
			set.mods = append(set.mods, id)
		}
	}
	return set
}

// TryFromBitsIntermode is like FromBitsIntermode but fails on unknown bits.
func TryFromBitsIntermode(bits uint32) (GameModsIntermode, error) {
	set := FromBitsIntermode(bits)
	if rest := bits &^ set.Bits(); rest != 0 {
		return GameModsIntermode{}, fmt.Errorf("%w %d", ErrUnknownBits, rest)
	}
	return set, nil
}
