package mods

import (
	"encoding/json"
	"fmt"
)

type SettingKind uint8

const (
	SettingNumber SettingKind = iota
	SettingBool
	SettingString
)

func (k SettingKind) String() string {
	switch k {
	case SettingNumber:
		return "number"
	case SettingBool:
		return "boolean"
	case SettingString:
		return "string"
	}
	return fmt.Sprintf("SettingKind(%d)", uint8(k))
}

// SettingField describes one settings entry of a mod. Every field is optional
// on the wire; Default is what the game uses when the field is absent.
type SettingField struct {
	Name    string
	Kind    SettingKind
	Default SettingValue
}

// SettingValue holds a single number, boolean or string.
type SettingValue struct {
	kind SettingKind
	num  float64
	flag bool
	str  string
}

func NumberValue(v float64) SettingValue { return SettingValue{kind: SettingNumber, num: v} }
func BoolValue(v bool) SettingValue      { return SettingValue{kind: SettingBool, flag: v} }
func StringValue(v string) SettingValue  { return SettingValue{kind: SettingString, str: v} }

func (v SettingValue) Kind() SettingKind { return v.kind }

func (v SettingValue) Number() (float64, bool) {
	return v.num, v.kind == SettingNumber
}

func (v SettingValue) Bool() (bool, bool) {
	return v.flag, v.kind == SettingBool
}

func (v SettingValue) Str() (string, bool) {
	return v.str, v.kind == SettingString
}

// Interface returns the value as float64, bool or string.
func (v SettingValue) Interface() any {
	switch v.kind {
	case SettingBool:
		return v.flag
	case SettingString:
		return v.str
	}
	return v.num
}

func (v SettingValue) String() string {
	return fmt.Sprint(v.Interface())
}

func (v SettingValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// decodeSettingValue parses raw against the declared kind.
func decodeSettingValue(raw json.RawMessage, kind SettingKind) (SettingValue, bool) {
	switch kind {
	case SettingNumber:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return SettingValue{}, false
		}
		return NumberValue(n), true
	case SettingBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return SettingValue{}, false
		}
		return BoolValue(b), true
	case SettingString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return SettingValue{}, false
		}
		return StringValue(s), true
	}
	return SettingValue{}, false
}

func num(name string, def float64) SettingField {
	return SettingField{Name: name, Kind: SettingNumber, Default: NumberValue(def)}
}

func flag(name string, def bool) SettingField {
	return SettingField{Name: name, Kind: SettingBool, Default: BoolValue(def)}
}

func text(name string, def string) SettingField {
	return SettingField{Name: name, Kind: SettingString, Default: StringValue(def)}
}

func fields(f ...SettingField) []SettingField {
	return f
}
