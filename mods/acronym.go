package mods

import (
	"encoding/json"
	"strings"
)

const (
	minAcronymLen = 2
	maxAcronymLen = 4
)

// Acronym is the 2-4 character code identifying a mod, e.g. "HD", "SV2" or "10K".
// It is comparable and can be used as a map key.
type Acronym struct {
	buf [maxAcronymLen]byte
	len uint8
}

// ParseAcronym validates s and returns it as an Acronym.
func ParseAcronym(s string) (Acronym, error) {
	if len(s) < minAcronymLen || len(s) > maxAcronymLen {
		return Acronym{}, ErrInvalidAcronymLength
	}
	var a Acronym
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAcronymChar(c) {
			return Acronym{}, ErrInvalidAcronymChars
		}
		a.buf[i] = c
	}
	a.len = uint8(len(s))
	return a, nil
}

func mustAcronym(s string) Acronym {
	a, err := ParseAcronym(s)
	if err != nil {
		panic("invalid acronym " + s + ": " + err.Error())
	}
	return a
}

func isAcronymChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (a Acronym) String() string {
	return string(a.buf[:a.len])
}

func (a Acronym) IsZero() bool {
	return a.len == 0
}

// Compare orders acronyms byte-wise.
func (a Acronym) Compare(other Acronym) int {
	return strings.Compare(a.String(), other.String())
}

func (a Acronym) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Acronym) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAcronym(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Acronym) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Acronym) UnmarshalText(text []byte) error {
	parsed, err := ParseAcronym(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
