package mods

import (
	"errors"
	"strconv"
	"strings"

	. "github.com/MingxuanGame/OsuMods/model"
)

func isSeparator(r rune) bool {
	return r == ',' || r == '+' || r == '|' || r == ' ' || r == '\t' || r == '\n'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseGameModsIntermode parses acronyms such as "HDDT", "+HD,DT" or "hd dt".
// A string of digits is read as a legacy bitmask, "NM" and "" as no mods.
func ParseGameModsIntermode(s string) (GameModsIntermode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if isDigits(s) {
		bits, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return GameModsIntermode{}, err
		}
		return FromBitsIntermode(uint32(bits)), nil
	}
	var set GameModsIntermode
	for _, chunk := range strings.FieldsFunc(s, isSeparator) {
		if chunk == "NM" {
			continue
		}
		ids, ok := splitAcronyms(chunk)
		if !ok {
			return GameModsIntermode{}, &UnknownModError{Acronym: chunk, Mode: anyMode}
		}
		for _, id := range ids {
			set.Insert(id)
		}
	}
	return set, nil
}

// splitAcronyms splits concatenated acronyms, preferring longer ones first
// and backtracking when the rest cannot be split.
func splitAcronyms(s string) ([]GameModIntermode, bool) {
	if s == "" {
		return nil, true
	}
	for n := min(maxAcronymLen, len(s)); n >= minAcronymLen; n-- {
		id, ok := IntermodeFromAcronym(s[:n])
		if !ok {
			continue
		}
		rest, ok := splitAcronyms(s[n:])
		if ok {
			return append([]GameModIntermode{id}, rest...), true
		}
	}
	return nil, false
}

// ParseGameMods parses like ParseGameModsIntermode and binds every mod to mode.
func ParseGameMods(s string, mode GameMode) (GameMods, error) {
	if trimmed := strings.TrimSpace(s); isDigits(trimmed) {
		bits, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil {
			return GameMods{}, err
		}
		return DecodeBits(uint32(bits), mode), nil
	}
	set, err := ParseGameModsIntermode(s)
	if err != nil {
		var unknown *UnknownModError
		if errors.As(err, &unknown) {
			unknown.Mode = mode
		}
		return GameMods{}, err
	}
	return set.TryWithMode(mode)
}
