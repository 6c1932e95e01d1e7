package mods

import (
	"iter"
	"slices"
	"strings"

	. "github.com/MingxuanGame/OsuMods/model"
)

// GameModsIntermode is an ordered set of mod identities, used when the game
// mode is unknown or irrelevant.
type GameModsIntermode struct {
	mods []GameModIntermode
}

func sortIntermodes(ids []GameModIntermode) {
	slices.SortFunc(ids, GameModIntermode.Compare)
}

func NewGameModsIntermode() GameModsIntermode {
	return GameModsIntermode{}
}

// NewIntermodeFrom builds a set from acronyms, failing on the first unknown one.
func NewIntermodeFrom(acronyms ...string) (GameModsIntermode, error) {
	var set GameModsIntermode
	for _, acronym := range acronyms {
		if _, err := ParseAcronym(acronym); err != nil {
			return GameModsIntermode{}, err
		}
		id, ok := IntermodeFromAcronym(acronym)
		if !ok {
			return GameModsIntermode{}, &UnknownModError{Acronym: acronym, Mode: anyMode}
		}
		set.Insert(id)
	}
	return set, nil
}

// MustIntermode is like NewIntermodeFrom but panics on error.
func MustIntermode(acronyms ...string) GameModsIntermode {
	set, err := NewIntermodeFrom(acronyms...)
	if err != nil {
		panic(err)
	}
	return set
}

// Insert adds id and reports whether it was not present yet.
func (g *GameModsIntermode) Insert(id GameModIntermode) bool {
	if !id.valid() {
		return false
	}
	i, found := slices.BinarySearchFunc(g.mods, id, GameModIntermode.Compare)
	if found {
		return false
	}
	g.mods = slices.Insert(g.mods, i, id)
	return true
}

func (g *GameModsIntermode) Remove(id GameModIntermode) bool {
	i, found := slices.BinarySearchFunc(g.mods, id, GameModIntermode.Compare)
	if !found {
		return false
	}
	g.mods = slices.Delete(g.mods, i, i+1)
	return true
}

func (g GameModsIntermode) Contains(id GameModIntermode) bool {
	_, found := slices.BinarySearchFunc(g.mods, id, GameModIntermode.Compare)
	return found
}

func (g GameModsIntermode) ContainsAny(ids ...GameModIntermode) bool {
	return slices.ContainsFunc(ids, g.Contains)
}

func (g GameModsIntermode) Len() int {
	return len(g.mods)
}

func (g GameModsIntermode) IsEmpty() bool {
	return len(g.mods) == 0
}

func (g GameModsIntermode) All() iter.Seq[GameModIntermode] {
	return slices.Values(g.mods)
}

func (g GameModsIntermode) Slice() []GameModIntermode {
	return slices.Clone(g.mods)
}

func (g GameModsIntermode) Union(other GameModsIntermode) GameModsIntermode {
	result := GameModsIntermode{mods: slices.Clone(g.mods)}
	for _, id := range other.mods {
		result.Insert(id)
	}
	return result
}

func (g GameModsIntermode) Intersection(other GameModsIntermode) GameModsIntermode {
	var result GameModsIntermode
	for _, id := range g.mods {
		if other.Contains(id) {
			result.mods = append(result.mods, id)
		}
	}
	return result
}

func (g GameModsIntermode) Equal(other GameModsIntermode) bool {
	return slices.Equal(g.mods, other.mods)
}

// Bits ORs the legacy bits of the set, identities without bits are dropped.
func (g GameModsIntermode) Bits() uint32 {
	var b uint32
	for _, id := range g.mods {
		if bits, ok := id.Bits(); ok {
			b |= bits
		}
	}
	return b
}

// CheckedBits is like Bits but ok is false when an identity has no legacy bit.
func (g GameModsIntermode) CheckedBits() (uint32, bool) {
	var b uint32
	for _, id := range g.mods {
		bits, ok := id.Bits()
		if !ok {
			return 0, false
		}
		b |= bits
	}
	return b, true
}

// WithMode converts to mods of mode, skipping identities mode does not have.
func (g GameModsIntermode) WithMode(mode GameMode) GameMods {
	var result GameMods
	for _, id := range g.mods {
		if m, ok := id.WithMode(mode); ok {
			result.Insert(m)
		}
	}
	return result
}

// TryWithMode is like WithMode but fails with an UnknownModError instead of skipping.
func (g GameModsIntermode) TryWithMode(mode GameMode) (GameMods, error) {
	var result GameMods
	for _, id := range g.mods {
		m, ok := id.WithMode(mode)
		if !ok {
			return GameMods{}, &UnknownModError{Acronym: id.Acronym().String(), Mode: mode}
		}
		result.Insert(m)
	}
	return result, nil
}

// String concatenates the acronyms, or returns "NM" when empty.
func (g GameModsIntermode) String() string {
	if len(g.mods) == 0 {
		return "NM"
	}
	var sb strings.Builder
	for _, id := range g.mods {
		sb.WriteString(id.Acronym().String())
	}
	return sb.String()
}

// Acronyms returns the acronyms in order.
func (g GameModsIntermode) Acronyms() []string {
	acronyms := make([]string, len(g.mods))
	for i, id := range g.mods {
		acronyms[i] = id.Acronym().String()
	}
	return acronyms
}
