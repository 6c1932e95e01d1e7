package mods

import "fmt"

// Conflict is a pair of mods that cannot be enabled together.
type Conflict struct {
	A, B GameMod
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s is incompatible with %s", c.A, c.B)
}

// Conflicts returns every incompatible pair, each pair once and in collection order.
func (g GameMods) Conflicts() []Conflict {
	var conflicts []Conflict
	for i, a := range g.mods {
		for _, b := range g.mods[i+1:] {
			if !a.IsCompatibleWith(b) {
				conflicts = append(conflicts, Conflict{A: a, B: b})
			}
		}
	}
	return conflicts
}

// IsValid reports whether no two mods of the collection conflict.
func (g GameMods) IsValid() bool {
	for i, a := range g.mods {
		for _, b := range g.mods[i+1:] {
			if !a.IsCompatibleWith(b) {
				return false
			}
		}
	}
	return true
}
