package mods

// rateSettings names the setting holding the effective playback rate of each rate mod.
// Wind Up and Wind Down report the rate they end at.
var rateSettings = map[GameModIntermode]string{
	DoubleTime:    "speed_change",
	Nightcore:     "speed_change",
	HalfTime:      "speed_change",
	Daycore:       "speed_change",
	WindUp:        "final_rate",
	WindDown:      "final_rate",
	AdaptiveSpeed: "initial_rate",
}

// ClockRate is the playback rate the mods apply, 1 when none changes it.
// Absent settings fall back to their defaults.
func (g GameMods) ClockRate() float64 {
	rate := 1.0
	for _, m := range g.mods {
		name, ok := rateSettings[m.Intermode()]
		if !ok {
			continue
		}
		v, ok := m.Setting(name)
		if !ok {
			continue
		}
		if n, ok := v.Number(); ok {
			rate *= n
		}
	}
	return rate
}
