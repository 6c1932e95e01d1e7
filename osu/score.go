package osu

import (
	"encoding/json"
	"fmt"
	"time"

	. "github.com/MingxuanGame/OsuMods/model"
	. "github.com/MingxuanGame/OsuMods/mods"
)

// Score is a score as returned by osu! API v2. Mods are decoded for the score's ruleset.
type Score struct {
	Id               int64     `json:"id"`
	UserId           int       `json:"user_id"`
	BeatmapId        int       `json:"beatmap_id"`
	Mode             GameMode  `json:"ruleset_id"`
	Mods             GameMods  `json:"mods"`
	Accuracy         float64   `json:"accuracy"`
	MaxCombo         int       `json:"max_combo"`
	TotalScore       int64     `json:"total_score"`
	LegacyTotalScore int64     `json:"legacy_total_score"`
	Rank             string    `json:"rank"`
	Passed           bool      `json:"passed"`
	PP               *float64  `json:"pp"`
	EndedAt          time.Time `json:"ended_at"`
}

type scoreAlias Score

func (s *Score) UnmarshalJSON(data []byte) error {
	var raw struct {
		scoreAlias
		Mods json.RawMessage `json:"mods"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("[osu! api] failed to unmarshal score: %w", err)
	}
	*s = Score(raw.scoreAlias)
	if len(raw.Mods) == 0 {
		return nil
	}
	mods, err := DecodeGameMods(raw.Mods, s.Mode)
	if err != nil {
		return fmt.Errorf("[osu! api] failed to decode mods of score %d: %w", s.Id, err)
	}
	s.Mods = mods
	return nil
}

// LegacyScore is a score as returned by osu! API v1 get_scores.
type LegacyScore struct {
	ScoreId         int64   `json:"score_id,string"`
	Score           int64   `json:"score,string"`
	Username        string  `json:"username"`
	UserId          int     `json:"user_id,string"`
	Count300        int     `json:"count300,string"`
	Count100        int     `json:"count100,string"`
	Count50         int     `json:"count50,string"`
	CountMiss       int     `json:"countmiss,string"`
	CountKatu       int     `json:"countkatu,string"`
	CountGeki       int     `json:"countgeki,string"`
	MaxCombo        int     `json:"maxcombo,string"`
	Perfect         int     `json:"perfect,string"`
	EnabledMods     uint32  `json:"enabled_mods,string"`
	Date            string  `json:"date"`
	Rank            string  `json:"rank"`
	PP              float64 `json:"pp,string"`
	ReplayAvailable int     `json:"replay_available,string"`
}

// Mods decodes EnabledMods for mode, the v1 API only reports the mode in the request.
func (s *LegacyScore) Mods(mode GameMode) GameMods {
	return DecodeStableBits(s.EnabledMods, mode)
}

// Time parses Date, which the v1 API reports in UTC.
func (s *LegacyScore) Time() (time.Time, error) {
	return time.Parse(time.DateTime, s.Date)
}
