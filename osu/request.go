package osu

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	. "github.com/MingxuanGame/OsuMods/model"
	. "github.com/MingxuanGame/OsuMods/mods"
)

// ModsQueryKey is the repeated query parameter osu! API v2 filters mods by.
const ModsQueryKey = "mods[]"

// ModsQuery encodes mods as osu! API v2 query parameters, one acronym per value.
func ModsQuery(mods GameModsIntermode) url.Values {
	query := url.Values{}
	for id := range mods.All() {
		query.Add(ModsQueryKey, id.Acronym().String())
	}
	return query
}

// ModsFromQuery reads mods back from query parameters. Both repeated "mods[]"
// values and a comma joined "mods" value are accepted.
func ModsFromQuery(query url.Values) (GameModsIntermode, error) {
	var set GameModsIntermode
	values := query[ModsQueryKey]
	for _, joined := range query["mods"] {
		values = append(values, strings.Split(joined, ",")...)
	}
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || value == "NM" {
			continue
		}
		id, ok := IntermodeFromAcronym(value)
		if !ok {
			return GameModsIntermode{}, fmt.Errorf("[osu! api] invalid mods query: %w", &UnknownModError{Acronym: value, Mode: -1})
		}
		set.Insert(id)
	}
	return set, nil
}

// ScoresQuery filters the scores of a beatmap (osu! API v2).
type ScoresQuery struct {
	Mode GameMode
	Mods GameModsIntermode
	// Legacy restricts the results to scores set on osu!stable
	Legacy bool
}

func (q ScoresQuery) Values() url.Values {
	query := ModsQuery(q.Mods)
	query.Set("mode", q.Mode.String())
	if q.Legacy {
		query.Set("legacy_only", "1")
	}
	return query
}

// LegacyScoresQuery is the parameter set of the osu! API v1 get_scores call.
type LegacyScoresQuery struct {
	ApiKey    string
	BeatmapId int
	UserId    int
	Mode      GameMode
	Mods      GameMods
	Limit     int
}

func (q LegacyScoresQuery) Values() url.Values {
	query := url.Values{}
	query.Set("k", q.ApiKey)
	query.Set("b", strconv.Itoa(q.BeatmapId))
	query.Set("m", strconv.Itoa(int(q.Mode)))
	if q.UserId != 0 {
		query.Set("u", strconv.Itoa(q.UserId))
		query.Set("type", "id")
	}
	if !q.Mods.IsEmpty() {
		query.Set("mods", strconv.FormatUint(uint64(EncodeStableBits(q.Mods)), 10))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	return query
}

// URL is the full get_scores request URL.
func (q LegacyScoresQuery) URL() string {
	return "https://osu.ppy.sh/api/get_scores?" + q.Values().Encode()
}
