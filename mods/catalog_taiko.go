package mods

var taikoCatalog = []Descriptor{
	{intermode: Easy, description: "Beats move slower, and less accuracy required!"},
	{intermode: NoFail},
	{intermode: HalfTime, settings: rateAdjust(0.75)},
	{intermode: Daycore, settings: fields(num("speed_change", 0.75))},
	{intermode: SimplifiedRhythm, settings: fields(
		flag("one_third_conversion", false),
		flag("one_sixth_conversion", true),
		flag("one_eighth_conversion", false),
	)},
	{intermode: HardRock},
	{intermode: SuddenDeath, settings: failCondition()},
	{intermode: Perfect, settings: failCondition()},
	{intermode: DoubleTime, settings: rateAdjust(1.5)},
	{intermode: Nightcore, settings: fields(num("speed_change", 1.5))},
	{intermode: Hidden, description: "Beats fade out before you hit them!"},
	{intermode: Flashlight, settings: fields(num("size_multiplier", 1), flag("combo_based_size", true))},
	{intermode: AccuracyChallenge, settings: accuracyChallenge()},
	{intermode: Random, description: "Shuffle around the colours!", settings: fields(num("seed", 0))},
	{intermode: DifficultyAdjust, settings: fields(
		num("scroll_speed", 1),
		num("drain_rate", 5),
		num("overall_difficulty", 5),
		flag("extended_limits", false),
	)},
	{intermode: Classic},
	{intermode: Swap},
	{intermode: SingleTap, description: "One key for dons, one key for kats."},
	{intermode: ConstantSpeed},
	{intermode: Autoplay},
	{intermode: Cinema},
	{intermode: Relax, description: "No need to remember which key is correct anymore!"},
	{intermode: WindUp, settings: windRate(1, 1.5)},
	{intermode: WindDown, settings: windRate(1, 0.75)},
	{intermode: Muted, settings: mutedSettings()},
	{intermode: AdaptiveSpeed, settings: adaptiveSpeed()},
	{intermode: ScoreV2},
}
