package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type GameMode int

//goland:noinspection ALL
const (
	GameModeOsu GameMode = iota
	GameModeTaiko
	GameModeCtb
	GameModeMania
)

// AllGameModes lists every ruleset in ruleset id order.
var AllGameModes = []GameMode{GameModeOsu, GameModeTaiko, GameModeCtb, GameModeMania}

func (m GameMode) IsValid() bool {
	return m >= GameModeOsu && m <= GameModeMania
}

// String returns the ruleset name used by osu! API v2.
func (m GameMode) String() string {
	switch m {
	case GameModeOsu:
		return "osu"
	case GameModeTaiko:
		return "taiko"
	case GameModeCtb:
		return "fruits"
	case GameModeMania:
		return "mania"
	}
	return fmt.Sprintf("GameMode(%d)", int(m))
}

// ParseGameMode accepts ruleset names, common aliases and numeric ruleset ids.
func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "osu", "std", "standard", "0":
		return GameModeOsu, nil
	case "taiko", "1":
		return GameModeTaiko, nil
	case "fruits", "catch", "ctb", "2":
		return GameModeCtb, nil
	case "mania", "3":
		return GameModeMania, nil
	}
	return 0, fmt.Errorf("unknown game mode %q", s)
}

func (m GameMode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(m))), nil
}

// UnmarshalJSON accepts a ruleset id or a ruleset name.
func (m *GameMode) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		mode := GameMode(id)
		if !mode.IsValid() {
			return fmt.Errorf("unknown game mode %d", id)
		}
		*m = mode
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("game mode must be a number or a string: %w", err)
	}
	mode, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m GameMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *GameMode) UnmarshalText(text []byte) error {
	mode, err := ParseGameMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
