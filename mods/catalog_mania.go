package mods

func coverage() []SettingField {
	return fields(num("coverage", 0.5))
}

var maniaCatalog = []Descriptor{
	{intermode: Easy, description: "More forgiving HP drain, less accuracy required, and three lives!", settings: fields(num("retries", 2))},
	{intermode: NoFail},
	{intermode: HalfTime, settings: rateAdjust(0.75)},
	{intermode: Daycore, settings: fields(num("speed_change", 0.75))},
	{intermode: NoRelease},
	{intermode: HardRock},
	{intermode: SuddenDeath, settings: failCondition()},
	{intermode: Perfect, settings: failCondition()},
	{intermode: DoubleTime, settings: rateAdjust(1.5)},
	{intermode: Nightcore, settings: fields(num("speed_change", 1.5))},
	{intermode: FadeIn, settings: coverage()},
	{intermode: Hidden, description: "Keys fade out before you hit them!", settings: coverage()},
	{intermode: Cover, settings: fields(num("coverage", 0.5), text("direction", "Down"))},
	{intermode: Flashlight, settings: fields(num("size_multiplier", 1), flag("combo_based_size", false))},
	{intermode: AccuracyChallenge, settings: accuracyChallenge()},
	{intermode: Random, description: "Shuffle around the keys!", settings: fields(num("seed", 0))},
	{intermode: DualStages},
	{intermode: Mirror, description: "Notes are flipped horizontally."},
	{intermode: DifficultyAdjust, settings: fields(
		num("drain_rate", 5),
		num("overall_difficulty", 5),
		flag("extended_limits", false),
	)},
	{intermode: Classic},
	{intermode: Invert},
	{intermode: ConstantSpeed},
	{intermode: HoldOff},
	{intermode: OneKey},
	{intermode: TwoKeys},
	{intermode: ThreeKeys},
	{intermode: FourKeys},
	{intermode: FiveKeys},
	{intermode: SixKeys},
	{intermode: SevenKeys},
	{intermode: EightKeys},
	{intermode: NineKeys},
	{intermode: TenKeys},
	{intermode: Autoplay},
	{intermode: Cinema},
	{intermode: WindUp, settings: windRate(1, 1.5)},
	{intermode: WindDown, settings: windRate(1, 0.75)},
	{intermode: Muted, settings: mutedSettings()},
	{intermode: AdaptiveSpeed, settings: adaptiveSpeed()},
	{intermode: ScoreV2},
}
