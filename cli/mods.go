package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/MingxuanGame/OsuMods/mods"
	"github.com/MingxuanGame/OsuMods/sql"
)

var ErrInvalidMods = errors.New("mods are not compatible")

type ModsView struct {
	Mode        GameMode      `json:"mode" yaml:"mode"`
	Acronyms    string        `json:"acronyms" yaml:"acronyms"`
	Bits        uint32        `json:"bits" yaml:"bits"`
	WithoutBits []string      `json:"without_bits,omitempty" yaml:"without_bits,omitempty"`
	ClockRate   float64       `json:"clock_rate" yaml:"clock_rate"`
	Mods        mods.GameMods `json:"mods" yaml:"mods"`
}

func NewModsView(mode GameMode, enabled mods.GameMods) ModsView {
	view := ModsView{
		Mode:      mode,
		Acronyms:  enabled.String(),
		Bits:      mods.EncodeBits(enabled),
		ClockRate: enabled.ClockRate(),
		Mods:      enabled,
	}
	for m := range enabled.All() {
		if _, ok := m.Bits(); !ok {
			view.WithoutBits = append(view.WithoutBits, m.Acronym().String())
		}
	}
	return view
}

// DecodeBits prints the mods of a legacy bitmask. With strict set, bits that
// no mod of mode uses are an error.
func DecodeBits(out Output, bits uint32, mode GameMode, strict bool) error {
	logger().Debug().Uint32("bits", bits).Str("mode", mode.String()).Msg("Decoding bits")
	if strict {
		enabled, err := mods.TryDecodeBits(bits, mode)
		if err != nil {
			return err
		}
		return out.Print(NewModsView(mode, enabled))
	}
	enabled := mods.DecodeBits(bits, mode)
	if rest := bits &^ mods.EncodeBits(enabled); rest != 0 {
		logger().Warn().Uint32("bits", rest).Msg("Ignored unknown bits")
	}
	return out.Print(NewModsView(mode, enabled))
}

// DecodeJSON prints the mods of any JSON form the osu! API uses.
func DecodeJSON(out Output, data []byte, mode GameMode) error {
	enabled, err := mods.DecodeGameMods(data, mode)
	if err != nil {
		return fmt.Errorf("[cli] failed to decode mods: %w", err)
	}
	return out.Print(NewModsView(mode, enabled))
}

type BitsView struct {
	Acronyms    string   `json:"acronyms" yaml:"acronyms"`
	Bits        uint32   `json:"bits" yaml:"bits"`
	WithoutBits []string `json:"without_bits,omitempty" yaml:"without_bits,omitempty"`
}

// EncodeBits prints the legacy bitmask of the given acronyms.
func EncodeBits(out Output, input string, mode GameMode) error {
	enabled, err := mods.ParseGameMods(input, mode)
	if err != nil {
		return err
	}
	view := NewModsView(mode, enabled)
	if len(view.WithoutBits) > 0 {
		logger().Warn().Strs("mods", view.WithoutBits).Msg("Mods without legacy bits are dropped")
	}
	return out.Print(BitsView{Acronyms: view.Acronyms, Bits: view.Bits, WithoutBits: view.WithoutBits})
}

// EncodeJSON prints the structured form of the given acronyms. Each
// assignment has the form ACRONYM.setting=value.
func EncodeJSON(out Output, input string, mode GameMode, assignments []string) error {
	enabled, err := mods.ParseGameMods(input, mode)
	if err != nil {
		return err
	}
	for _, assignment := range assignments {
		if err = applySetting(&enabled, mode, assignment); err != nil {
			return err
		}
	}
	return out.Print(enabled)
}

func applySetting(enabled *mods.GameMods, mode GameMode, assignment string) error {
	target, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("setting %q must look like ACRONYM.name=value", assignment)
	}
	acronym, name, ok := strings.Cut(target, ".")
	if !ok {
		return fmt.Errorf("setting %q must look like ACRONYM.name=value", assignment)
	}
	acronym = strings.ToUpper(acronym)
	id, ok := mods.IntermodeFromAcronym(acronym)
	if !ok {
		return &mods.UnknownModError{Acronym: acronym, Mode: mode}
	}
	m, ok := enabled.Get(id)
	if !ok {
		return fmt.Errorf("mod %s is not enabled", acronym)
	}
	field, ok := settingField(m, name)
	if !ok {
		return fmt.Errorf("%w `%s` for mod %s", mods.ErrUnknownSetting, name, acronym)
	}
	var err error
	switch field.Kind {
	case mods.SettingNumber:
		var n float64
		if n, err = strconv.ParseFloat(value, 64); err == nil {
			err = m.SetNumber(name, n)
		}
	case mods.SettingBool:
		var b bool
		if b, err = strconv.ParseBool(value); err == nil {
			err = m.SetBool(name, b)
		}
	default:
		err = m.SetString(name, value)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s.%s: %w", acronym, name, err)
	}
	enabled.Insert(m)
	return nil
}

func settingField(m mods.GameMod, name string) (mods.SettingField, bool) {
	for _, field := range m.SettingFields() {
		if field.Name == name {
			return field, true
		}
	}
	return mods.SettingField{}, false
}

type ParseView struct {
	Acronyms []string `json:"acronyms" yaml:"acronyms"`
	Names    []string `json:"names" yaml:"names"`
	Bits     uint32   `json:"bits" yaml:"bits"`
	Modes    []string `json:"modes" yaml:"modes"`
}

// Parse prints the mode independent reading of input and the modes that have all of its mods.
func Parse(out Output, input string) error {
	set, err := mods.ParseGameModsIntermode(input)
	if err != nil {
		return err
	}
	view := ParseView{Acronyms: set.Acronyms(), Names: []string{}, Bits: set.Bits(), Modes: []string{}}
	for id := range set.All() {
		view.Names = append(view.Names, id.Name())
	}
	for _, mode := range AllGameModes {
		if _, err := set.TryWithMode(mode); err == nil {
			view.Modes = append(view.Modes, mode.String())
		}
	}
	return out.Print(view)
}

type ValidateView struct {
	Acronyms  string   `json:"acronyms" yaml:"acronyms"`
	Valid     bool     `json:"valid" yaml:"valid"`
	Conflicts []string `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// Validate prints the incompatible pairs among the given mods and fails when there is one.
func Validate(out Output, input string, mode GameMode) error {
	enabled, err := mods.ParseGameMods(input, mode)
	if err != nil {
		return err
	}
	conflicts := enabled.Conflicts()
	view := ValidateView{Acronyms: enabled.String(), Valid: len(conflicts) == 0}
	for _, c := range conflicts {
		view.Conflicts = append(view.Conflicts, c.String())
	}
	if err = out.Print(view); err != nil {
		return err
	}
	if !view.Valid {
		return fmt.Errorf("%w: %s", ErrInvalidMods, strings.Join(view.Conflicts, ", "))
	}
	return nil
}

// List prints the catalog of mode, optionally only one kind of mod. With
// table set it prints a human readable table instead of the configured format.
func List(out Output, mode GameMode, kind string, table bool) error {
	var filter string
	if kind != "" {
		k, err := mods.ParseGameModKind(kind)
		if err != nil {
			return err
		}
		filter = k.String()
	}
	rows := []sql.CatalogRow{}
	for _, row := range sql.Catalog(mode) {
		if filter == "" || row.Kind == filter {
			rows = append(rows, row)
		}
	}
	if !table {
		return out.Print(rows)
	}
	out.Header(fmt.Sprintf("%s mods (%d)", mode, len(rows)))
	for _, row := range rows {
		bits := "-"
		if row.Bits != nil {
			bits = strconv.FormatUint(uint64(*row.Bits), 10)
		}
		_, err := fmt.Fprintf(out.Writer, "%-4s %-20s %-10s %s\n", row.Acronym, row.Name, bits, kindStyle.Render(row.Kind))
		if err != nil {
			return err
		}
	}
	return nil
}
