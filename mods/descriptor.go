package mods

import (
	"slices"

	. "github.com/MingxuanGame/OsuMods/model"
)

// Descriptor is one row of the mod catalog: a mod identity as it exists in one game mode.
// Rows are shared by every GameMod built from them and never change after init.
type Descriptor struct {
	mode        GameMode
	intermode   GameModIntermode
	description string
	settings    []SettingField
}

// The accessors are safe on a nil row, which is what the zero GameMod holds.

func (d *Descriptor) Mode() GameMode {
	if d == nil {
		return anyMode
	}
	return d.mode
}

func (d *Descriptor) Intermode() GameModIntermode {
	if d == nil {
		return intermodeCount
	}
	return d.intermode
}

func (d *Descriptor) Description() string {
	if d == nil {
		return ""
	}
	return d.description
}

// Settings returns a copy of the settings schema in wire order.
func (d *Descriptor) Settings() []SettingField {
	if d == nil {
		return nil
	}
	return slices.Clone(d.settings)
}

func (d *Descriptor) Acronym() Acronym {
	return d.Intermode().Acronym()
}

func (d *Descriptor) Kind() GameModKind {
	return d.Intermode().Kind()
}

func (d *Descriptor) Bits() (uint32, bool) {
	return d.Intermode().Bits()
}

// Index is the legacy ordering index, the legacy bit position plus one.
func (d *Descriptor) Index() (uint8, bool) {
	return d.Intermode().index()
}

func (d *Descriptor) Order() GameModOrder {
	index, ok := d.Index()
	return GameModOrder{Mode: d.Mode(), Index: index, HasIndex: ok, Intermode: d.Intermode()}
}

// IncompatibleMods lists the acronyms this mod cannot be combined with in its mode.
func (d *Descriptor) IncompatibleMods() []Acronym {
	incompatible := d.Intermode().incompatible()
	acronyms := make([]Acronym, 0, len(incompatible))
	for _, id := range incompatible {
		if _, ok := LookupIntermode(id, d.mode); ok {
			acronyms = append(acronyms, id.Acronym())
		}
	}
	return acronyms
}

func (d *Descriptor) field(name string) (int, bool) {
	if d == nil {
		return 0, false
	}
	for i := range d.settings {
		if d.settings[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

type modeCatalog struct {
	rows        []*Descriptor
	byAcronym   map[Acronym]*Descriptor
	byIntermode [intermodeCount]*Descriptor
}

var catalogs = buildCatalogs()

func buildCatalogs() [GameModeMania + 1]modeCatalog {
	var built [GameModeMania + 1]modeCatalog
	for mode, rows := range map[GameMode][]Descriptor{
		GameModeOsu:   osuCatalog,
		GameModeTaiko: taikoCatalog,
		GameModeCtb:   catchCatalog,
		GameModeMania: maniaCatalog,
	} {
		c := modeCatalog{byAcronym: make(map[Acronym]*Descriptor, len(rows))}
		for i := range rows {
			d := &rows[i]
			d.mode = mode
			if d.description == "" {
				d.description = intermodeInfos[d.intermode].description
			}
			c.rows = append(c.rows, d)
			c.byAcronym[d.Acronym()] = d
			c.byIntermode[d.intermode] = d
		}
		slices.SortFunc(c.rows, func(a, b *Descriptor) int {
			return a.Order().Compare(b.Order())
		})
		built[mode] = c
	}
	return built
}

// Lookup finds the catalog row for acronym in mode.
func Lookup(acronym string, mode GameMode) (*Descriptor, bool) {
	if !mode.IsValid() {
		return nil, false
	}
	a, err := ParseAcronym(acronym)
	if err != nil {
		return nil, false
	}
	d, ok := catalogs[mode].byAcronym[a]
	return d, ok
}

func LookupIntermode(id GameModIntermode, mode GameMode) (*Descriptor, bool) {
	if !mode.IsValid() || !id.valid() {
		return nil, false
	}
	d := catalogs[mode].byIntermode[id]
	return d, d != nil
}

// Descriptors returns the catalog rows of mode in canonical order.
func Descriptors(mode GameMode) []*Descriptor {
	if !mode.IsValid() {
		return nil
	}
	return slices.Clone(catalogs[mode].rows)
}
