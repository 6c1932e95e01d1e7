package mods

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	. "github.com/MingxuanGame/OsuMods/model"
)

var errModsShape = errors.New("mods must be null, a bitmask, an acronym string or an array")

type rawGameMod struct {
	Acronym  *string                    `json:"acronym"`
	Settings map[string]json.RawMessage `json:"settings"`
}

// MarshalJSON writes {"acronym": "XX"} plus a "settings" object holding the
// present settings in schema order. "settings" is left out when none are present.
func (m GameMod) MarshalJSON() ([]byte, error) {
	if m.desc == nil {
		return nil, errors.New("cannot marshal the zero GameMod")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"acronym":`)
	acronym, _ := json.Marshal(m.Acronym().String())
	buf.Write(acronym)
	if m.HasSettings() {
		buf.WriteString(`,"settings":{`)
		first := true
		var err error
		m.presentSettings(func(field SettingField, value SettingValue) {
			if err != nil {
				return
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			var key, val []byte
			key, err = json.Marshal(field.Name)
			if err != nil {
				return
			}
			val, err = json.Marshal(value)
			if err != nil {
				return
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings of %s: %w", m, err)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeGameMod decodes one {"acronym", "settings"} object for mode. Settings
// missing from the object stay absent and unknown settings are ignored.
func DecodeGameMod(data []byte, mode GameMode) (GameMod, error) {
	var raw rawGameMod
	if err := json.Unmarshal(data, &raw); err != nil {
		return GameMod{}, err
	}
	if raw.Acronym == nil {
		return GameMod{}, &MissingFieldError{Field: "acronym"}
	}
	m, ok := NewGameMod(*raw.Acronym, mode)
	if !ok {
		return GameMod{}, &UnknownModError{Acronym: *raw.Acronym, Mode: mode}
	}
	if err := m.decodeSettings(raw.Settings); err != nil {
		return GameMod{}, err
	}
	return m, nil
}

func (m *GameMod) decodeSettings(settings map[string]json.RawMessage) error {
	if len(settings) == 0 {
		return nil
	}
	for i, field := range m.desc.settings {
		raw, ok := settings[field.Name]
		if !ok || isNull(raw) {
			continue
		}
		value, ok := decodeSettingValue(raw, field.Kind)
		if !ok {
			return &SettingTypeError{Acronym: m.Acronym(), Field: field.Name, Want: field.Kind}
		}
		if m.settings == nil {
			m.settings = make([]optionalSetting, len(m.desc.settings))
		}
		m.settings[i] = optionalSetting{value: value, set: true}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func firstByte(data []byte) byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

func (g GameMods) MarshalJSON() ([]byte, error) {
	if g.mods == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g.mods)
}

// DecodeGameMods decodes mods of mode from any form the osu! API uses:
// null, a legacy bitmask as number or digit string, an acronym string such as
// "HDDT", or an array of acronym strings and {"acronym", "settings"} objects.
func DecodeGameMods(data []byte, mode GameMode) (GameMods, error) {
	switch c := firstByte(data); {
	case c == 'n':
		if !isNull(data) {
			return GameMods{}, errModsShape
		}
		return GameMods{}, nil
	case c >= '0' && c <= '9':
		var bits uint32
		if err := json.Unmarshal(data, &bits); err != nil {
			return GameMods{}, fmt.Errorf("invalid mods bitmask: %w", err)
		}
		return DecodeBits(bits, mode), nil
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return GameMods{}, err
		}
		return ParseGameMods(s, mode)
	case c == '{':
		m, err := DecodeGameMod(data, mode)
		if err != nil {
			return GameMods{}, err
		}
		var mods GameMods
		mods.Insert(m)
		return mods, nil
	case c == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return GameMods{}, err
		}
		var mods GameMods
		for _, item := range items {
			m, err := decodeModItem(item, mode)
			if err != nil {
				return GameMods{}, err
			}
			mods.Insert(m)
		}
		return mods, nil
	}
	return GameMods{}, errModsShape
}

func decodeModItem(item json.RawMessage, mode GameMode) (GameMod, error) {
	if firstByte(item) != '"' {
		return DecodeGameMod(item, mode)
	}
	var acronym string
	if err := json.Unmarshal(item, &acronym); err != nil {
		return GameMod{}, err
	}
	m, ok := NewGameMod(acronym, mode)
	if !ok {
		return GameMod{}, &UnknownModError{Acronym: acronym, Mode: mode}
	}
	return m, nil
}

// MarshalJSON writes the set as an array of acronyms.
func (g GameModsIntermode) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Acronyms())
}

// UnmarshalJSON accepts the same forms as DecodeGameMods. Settings are discarded.
func (g *GameModsIntermode) UnmarshalJSON(data []byte) error {
	switch c := firstByte(data); {
	case c == 'n':
		if !isNull(data) {
			return errModsShape
		}
		*g = GameModsIntermode{}
		return nil
	case c >= '0' && c <= '9':
		var bits uint32
		if err := json.Unmarshal(data, &bits); err != nil {
			return fmt.Errorf("invalid mods bitmask: %w", err)
		}
		*g = FromBitsIntermode(bits)
		return nil
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		set, err := ParseGameModsIntermode(s)
		if err != nil {
			return err
		}
		*g = set
		return nil
	case c == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		var set GameModsIntermode
		for _, item := range items {
			acronym, err := itemAcronym(item)
			if err != nil {
				return err
			}
			id, ok := IntermodeFromAcronym(acronym)
			if !ok {
				return &UnknownModError{Acronym: acronym, Mode: anyMode}
			}
			set.Insert(id)
		}
		*g = set
		return nil
	}
	return errModsShape
}

func itemAcronym(item json.RawMessage) (string, error) {
	if firstByte(item) == '"' {
		var acronym string
		err := json.Unmarshal(item, &acronym)
		return acronym, err
	}
	var raw rawGameMod
	if err := json.Unmarshal(item, &raw); err != nil {
		return "", err
	}
	if raw.Acronym == nil {
		return "", &MissingFieldError{Field: "acronym"}
	}
	return *raw.Acronym, nil
}
