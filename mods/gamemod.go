package mods

import (
	"fmt"
	"slices"

	. "github.com/MingxuanGame/OsuMods/model"
)

// GameMod is one mod for one game mode together with its settings.
// The zero value is not a valid mod; build one with NewGameMod. Its accessors
// return empty values and its setters fail with ErrZeroGameMod.
type GameMod struct {
	desc     *Descriptor
	settings []optionalSetting
}

type optionalSetting struct {
	value SettingValue
	set   bool
}

// NewGameMod returns the mod with all settings absent, ok is false when mode
// has no mod with that acronym.
func NewGameMod(acronym string, mode GameMode) (GameMod, bool) {
	d, ok := Lookup(acronym, mode)
	if !ok {
		return GameMod{}, false
	}
	return GameMod{desc: d}, true
}

// MustGameMod is like NewGameMod but panics for unknown mods.
func MustGameMod(acronym string, mode GameMode) GameMod {
	m, ok := NewGameMod(acronym, mode)
	if !ok {
		panic(&UnknownModError{Acronym: acronym, Mode: mode})
	}
	return m
}

// WithMode returns the mod of this identity in mode.
func (m GameModIntermode) WithMode(mode GameMode) (GameMod, bool) {
	d, ok := LookupIntermode(m, mode)
	if !ok {
		return GameMod{}, false
	}
	return GameMod{desc: d}, true
}

func (m GameMod) IsZero() bool {
	return m.desc == nil
}

func (m GameMod) Descriptor() *Descriptor {
	return m.desc
}

func (m GameMod) Acronym() Acronym {
	return m.desc.Acronym()
}

func (m GameMod) Description() string {
	return m.desc.Description()
}

func (m GameMod) Kind() GameModKind {
	return m.desc.Kind()
}

func (m GameMod) Mode() GameMode {
	return m.desc.Mode()
}

func (m GameMod) Bits() (uint32, bool) {
	return m.desc.Bits()
}

func (m GameMod) Intermode() GameModIntermode {
	return m.desc.Intermode()
}

func (m GameMod) IncompatibleMods() []Acronym {
	return m.desc.IncompatibleMods()
}

func (m GameMod) Order() GameModOrder {
	return m.desc.Order()
}

// IsCompatibleWith reports whether both mods may be used together.
func (m GameMod) IsCompatibleWith(other GameMod) bool {
	return !slices.Contains(m.Intermode().incompatible(), other.Intermode()) &&
		!slices.Contains(other.Intermode().incompatible(), m.Intermode())
}

// SettingFields is a copy of the settings schema of the mod.
func (m GameMod) SettingFields() []SettingField {
	return m.desc.Settings()
}

func (m GameMod) SettingNames() []string {
	fields := m.desc.Settings()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return names
}

// HasSettings reports whether at least one setting is present.
func (m GameMod) HasSettings() bool {
	for _, s := range m.settings {
		if s.set {
			return true
		}
	}
	return false
}

func (m GameMod) lookup(name string) (optionalSetting, int, bool) {
	i, ok := m.desc.field(name)
	if !ok {
		return optionalSetting{}, 0, false
	}
	if m.settings == nil {
		return optionalSetting{}, i, true
	}
	return m.settings[i], i, true
}

// Get returns the value of a present setting.
func (m GameMod) Get(name string) (SettingValue, bool) {
	s, _, ok := m.lookup(name)
	if !ok || !s.set {
		return SettingValue{}, false
	}
	return s.value, true
}

// Setting returns the value of a setting, or its default when absent.
// ok is false only if the mod has no such setting.
func (m GameMod) Setting(name string) (SettingValue, bool) {
	s, i, ok := m.lookup(name)
	if !ok {
		return SettingValue{}, false
	}
	if s.set {
		return s.value, true
	}
	return m.desc.settings[i].Default, true
}

func (m GameMod) Number(name string) (float64, bool) {
	v, ok := m.Get(name)
	if !ok {
		return 0, false
	}
	return v.Number()
}

func (m GameMod) Bool(name string) (bool, bool) {
	v, ok := m.Get(name)
	if !ok {
		return false, false
	}
	return v.Bool()
}

func (m GameMod) Str(name string) (string, bool) {
	v, ok := m.Get(name)
	if !ok {
		return "", false
	}
	return v.Str()
}

// Set stores a setting value, it fails for unknown fields and mismatched kinds.
func (m *GameMod) Set(name string, value SettingValue) error {
	if m.desc == nil {
		return ErrZeroGameMod
	}
	i, ok := m.desc.field(name)
	if !ok {
		return fmt.Errorf("%w `%s` for mod %s", ErrUnknownSetting, name, m.Acronym())
	}
	field := m.desc.settings[i]
	if field.Kind != value.Kind() {
		return &SettingTypeError{Acronym: m.Acronym(), Field: name, Want: field.Kind}
	}
	settings := make([]optionalSetting, len(m.desc.settings))
	copy(settings, m.settings)
	settings[i] = optionalSetting{value: value, set: true}
	m.settings = settings
	return nil
}

func (m *GameMod) SetNumber(name string, v float64) error {
	return m.Set(name, NumberValue(v))
}

func (m *GameMod) SetBool(name string, v bool) error {
	return m.Set(name, BoolValue(v))
}

func (m *GameMod) SetString(name string, v string) error {
	return m.Set(name, StringValue(v))
}

// ClearSetting makes a setting absent again.
func (m *GameMod) ClearSetting(name string) {
	i, ok := m.desc.field(name)
	if !ok || m.settings == nil {
		return
	}
	settings := slices.Clone(m.settings)
	settings[i] = optionalSetting{}
	m.settings = settings
}

// Equal compares identity, mode and settings.
func (m GameMod) Equal(other GameMod) bool {
	if m.desc != other.desc {
		return false
	}
	if m.desc == nil {
		return true
	}
	for i := range m.desc.settings {
		var a, b optionalSetting
		if m.settings != nil {
			a = m.settings[i]
		}
		if other.settings != nil {
			b = other.settings[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

func (m GameMod) String() string {
	if m.desc == nil {
		return "<invalid mod>"
	}
	return m.Acronym().String()
}

// presentSettings yields the present settings in schema order.
func (m GameMod) presentSettings(yield func(field SettingField, value SettingValue)) {
	for i, s := range m.settings {
		if s.set {
			yield(m.desc.settings[i], s.value)
		}
	}
}
