package mods

import (
	"encoding/json"
	"fmt"
	"strings"
)

type GameModKind uint8

//goland:noinspection ALL
const (
	KindDifficultyReduction GameModKind = iota
	KindDifficultyIncrease
	KindConversion
	KindAutomation
	KindFun
	KindSystem
)

var kindNames = [...]string{
	KindDifficultyReduction: "DifficultyReduction",
	KindDifficultyIncrease:  "DifficultyIncrease",
	KindConversion:          "Conversion",
	KindAutomation:          "Automation",
	KindFun:                 "Fun",
	KindSystem:              "System",
}

func (k GameModKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("GameModKind(%d)", k)
}

// ParseGameModKind accepts kind names case-insensitively.
func ParseGameModKind(s string) (GameModKind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(name, s) {
			return GameModKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mod kind %q", s)
}

func (k GameModKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *GameModKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseGameModKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
