package mods

import (
	"cmp"

	. "github.com/MingxuanGame/OsuMods/model"
)

// GameModOrder is the key a GameMods collection is sorted by. Settings do not
// take part in it, so two instances of the same mod in the same mode share a key.
type GameModOrder struct {
	Mode      GameMode
	Index     uint8
	HasIndex  bool
	Intermode GameModIntermode
}

// Compare orders by mode, then legacy index with indexed mods first, then acronym.
func (o GameModOrder) Compare(other GameModOrder) int {
	if c := cmp.Compare(o.Mode, other.Mode); c != 0 {
		return c
	}
	switch {
	case o.HasIndex && other.HasIndex:
		if c := cmp.Compare(o.Index, other.Index); c != 0 {
			return c
		}
	case o.HasIndex:
		return -1
	case other.HasIndex:
		return 1
	}
	return o.Intermode.Acronym().Compare(other.Intermode.Acronym())
}
