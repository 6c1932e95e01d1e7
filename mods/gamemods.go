package mods

import (
	"iter"
	"slices"
	"strings"

	. "github.com/MingxuanGame/OsuMods/model"
)

// GameMods is an ordered set of mods. There is at most one entry per mode and
// identity, and iteration follows GameModOrder. Mods of different modes may be
// mixed, callers normally fill it from a single mode.
type GameMods struct {
	mods []GameMod
}

func NewGameMods() GameMods {
	return GameMods{}
}

// NewGameModsFrom builds a collection of default-settings mods for mode.
func NewGameModsFrom(mode GameMode, acronyms ...string) (GameMods, error) {
	var mods GameMods
	for _, acronym := range acronyms {
		if _, err := ParseAcronym(acronym); err != nil {
			return GameMods{}, err
		}
		m, ok := NewGameMod(acronym, mode)
		if !ok {
			return GameMods{}, &UnknownModError{Acronym: acronym, Mode: mode}
		}
		mods.Insert(m)
	}
	return mods, nil
}

// MustMods is like NewGameModsFrom but panics on error, for acronyms known at compile time.
func MustMods(mode GameMode, acronyms ...string) GameMods {
	mods, err := NewGameModsFrom(mode, acronyms...)
	if err != nil {
		panic(err)
	}
	return mods
}

func (g *GameMods) search(order GameModOrder) (int, bool) {
	return slices.BinarySearchFunc(g.mods, order, func(m GameMod, o GameModOrder) int {
		return m.Order().Compare(o)
	})
}

// Insert adds m, replacing the entry of the same mode and identity.
func (g *GameMods) Insert(m GameMod) {
	if m.IsZero() {
		return
	}
	i, found := g.search(m.Order())
	if found {
		g.mods[i] = m
		return
	}
	g.mods = slices.Insert(g.mods, i, m)
}

// Remove deletes every entry with the given identity and reports whether one existed.
func (g *GameMods) Remove(id GameModIntermode) bool {
	before := len(g.mods)
	g.mods = slices.DeleteFunc(g.mods, func(m GameMod) bool {
		return m.Intermode() == id
	})
	return len(g.mods) != before
}

// RemoveMod deletes the entry sharing m's mode and identity.
func (g *GameMods) RemoveMod(m GameMod) bool {
	if m.IsZero() {
		return false
	}
	i, found := g.search(m.Order())
	if !found {
		return false
	}
	g.mods = slices.Delete(g.mods, i, i+1)
	return true
}

func (g GameMods) Contains(id GameModIntermode) bool {
	return slices.ContainsFunc(g.mods, func(m GameMod) bool {
		return m.Intermode() == id
	})
}

func (g GameMods) ContainsAcronym(acronym string) bool {
	id, ok := IntermodeFromAcronym(acronym)
	return ok && g.Contains(id)
}

func (g GameMods) ContainsAny(ids ...GameModIntermode) bool {
	for _, id := range ids {
		if g.Contains(id) {
			return true
		}
	}
	return false
}

// Get returns the first entry with the given identity, or the zero GameMod
// and false when there is none.
func (g GameMods) Get(id GameModIntermode) (GameMod, bool) {
	for _, m := range g.mods {
		if m.Intermode() == id {
			return m, true
		}
	}
	return GameMod{}, false
}

func (g GameMods) Len() int {
	return len(g.mods)
}

func (g GameMods) IsEmpty() bool {
	return len(g.mods) == 0
}

// All iterates the mods in order. The sequence can be ranged over repeatedly.
func (g GameMods) All() iter.Seq[GameMod] {
	return func(yield func(GameMod) bool) {
		for _, m := range g.mods {
			if !yield(m) {
				return
			}
		}
	}
}

// Slice returns a copy of the mods in order.
func (g GameMods) Slice() []GameMod {
	return slices.Clone(g.mods)
}

// Bits ORs the legacy bits of every mod that has one, mods without bits are dropped.
func (g GameMods) Bits() uint32 {
	var b uint32
	for _, m := range g.mods {
		if bits, ok := m.Bits(); ok {
			b |= bits
		}
	}
	return b
}

// CheckedBits is like Bits but ok is false when a mod has no legacy bit.
func (g GameMods) CheckedBits() (uint32, bool) {
	var b uint32
	for _, m := range g.mods {
		bits, ok := m.Bits()
		if !ok {
			return 0, false
		}
		b |= bits
	}
	return b, true
}

// Intermode drops mode and settings.
func (g GameMods) Intermode() GameModsIntermode {
	var result GameModsIntermode
	for _, m := range g.mods {
		result.Insert(m.Intermode())
	}
	return result
}

func (g GameMods) Equal(other GameMods) bool {
	return slices.EqualFunc(g.mods, other.mods, GameMod.Equal)
}

// String concatenates the acronyms, e.g. "HDDT", or returns "NM" when empty.
func (g GameMods) String() string {
	if len(g.mods) == 0 {
		return "NM"
	}
	var sb strings.Builder
	for _, m := range g.mods {
		sb.WriteString(m.Acronym().String())
	}
	return sb.String()
}

// ValidateMode fails with an UnknownModError for the first mod not in mode.
func (g GameMods) ValidateMode(mode GameMode) error {
	for _, m := range g.mods {
		if m.Mode() != mode {
			return &UnknownModError{Acronym: m.Acronym().String(), Mode: mode}
		}
	}
	return nil
}

// Clone returns a collection that shares nothing with g.
func (g GameMods) Clone() GameMods {
	return GameMods{mods: slices.Clone(g.mods)}
}
