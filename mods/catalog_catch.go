package mods

var catchCatalog = []Descriptor{
	{intermode: Easy, settings: fields(num("retries", 2))},
	{intermode: NoFail},
	{intermode: HalfTime, settings: rateAdjust(0.75)},
	{intermode: Daycore, settings: fields(num("speed_change", 0.75))},
	{intermode: HardRock},
	{intermode: SuddenDeath, settings: failCondition()},
	{intermode: Perfect, settings: failCondition()},
	{intermode: DoubleTime, settings: rateAdjust(1.5)},
	{intermode: Nightcore, settings: fields(num("speed_change", 1.5))},
	{intermode: Hidden, description: "Play with fading fruits."},
	{intermode: Flashlight, settings: fields(num("size_multiplier", 1), flag("combo_based_size", true))},
	{intermode: AccuracyChallenge, settings: accuracyChallenge()},
	{intermode: DifficultyAdjust, settings: fields(
		num("circle_size", 5),
		num("approach_rate", 5),
		flag("hard_rock_offsets", false),
		num("drain_rate", 5),
		num("overall_difficulty", 5),
		flag("extended_limits", false),
	)},
	{intermode: Classic},
	{intermode: Mirror, description: "Fruits are flipped horizontally."},
	{intermode: Autoplay},
	{intermode: Cinema},
	{intermode: Relax, description: "Use the mouse to control the catcher."},
	{intermode: WindUp, settings: windRate(1, 1.5)},
	{intermode: WindDown, settings: windRate(1, 0.75)},
	{intermode: FloatingFruits},
	{intermode: Muted, settings: mutedSettings()},
	{intermode: NoScope, settings: fields(num("hidden_combo_count", 10))},
	{intermode: MovingFast},
	{intermode: ScoreV2},
}
