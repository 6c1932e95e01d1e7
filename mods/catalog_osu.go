package mods

func rateAdjust(def float64) []SettingField {
	return fields(num("speed_change", def), flag("adjust_pitch", false))
}

func windRate(initial, final float64) []SettingField {
	return fields(num("initial_rate", initial), num("final_rate", final), flag("adjust_pitch", false))
}

func failCondition() []SettingField {
	return fields(flag("restart", false))
}

func accuracyChallenge() []SettingField {
	return fields(num("minimum_accuracy", 0.9), text("accuracy_judge_mode", "Standard"), flag("restart", false))
}

func mutedSettings() []SettingField {
	return fields(
		flag("inverse_muting", false),
		flag("enable_metronome", true),
		num("mute_combo_count", 100),
		flag("affects_hit_sounds", true),
	)
}

func adaptiveSpeed() []SettingField {
	return fields(num("initial_rate", 1), flag("adjust_pitch", false))
}

var osuCatalog = []Descriptor{
	{intermode: Easy, settings: fields(num("retries", 2))},
	{intermode: NoFail},
	{intermode: HalfTime, settings: rateAdjust(0.75)},
	{intermode: Daycore, settings: fields(num("speed_change", 0.75))},
	{intermode: HardRock},
	{intermode: SuddenDeath, settings: fields(flag("fail_on_slider_tail", false), flag("restart", false))},
	{intermode: Perfect, settings: failCondition()},
	{intermode: DoubleTime, settings: rateAdjust(1.5)},
	{intermode: Nightcore, settings: fields(num("speed_change", 1.5))},
	{intermode: Hidden, settings: fields(flag("only_fade_approach_circles", false))},
	{intermode: Flashlight, settings: fields(
		num("follow_delay", 120),
		num("size_multiplier", 1),
		flag("combo_based_size", true),
	)},
	{intermode: Blinds},
	{intermode: StrictTracking},
	{intermode: AccuracyChallenge, settings: accuracyChallenge()},
	{intermode: TargetPractice, settings: fields(num("seed", 0), flag("metronome", true))},
	{intermode: DifficultyAdjust, settings: fields(
		num("circle_size", 5),
		num("approach_rate", 5),
		num("drain_rate", 5),
		num("overall_difficulty", 5),
		flag("extended_limits", false),
	)},
	{intermode: Classic, settings: fields(
		flag("no_slider_head_accuracy", true),
		flag("classic_note_lock", true),
		flag("always_play_tail_sample", true),
		flag("fade_hit_circle_early", true),
		flag("classic_health", true),
	)},
	{intermode: Random, settings: fields(num("angle_sharpness", 7), num("seed", 0))},
	{intermode: Mirror, settings: fields(text("reflection", "Horizontal"))},
	{intermode: Alternate},
	{intermode: SingleTap},
	{intermode: Autoplay},
	{intermode: Cinema},
	{intermode: Relax},
	{intermode: Autopilot},
	{intermode: SpunOut},
	{intermode: Transform},
	{intermode: Wiggle, settings: fields(num("strength", 1))},
	{intermode: SpinIn},
	{intermode: Grow, settings: fields(num("start_scale", 0.5))},
	{intermode: Deflate, settings: fields(num("start_scale", 2))},
	{intermode: WindUp, settings: windRate(1, 1.5)},
	{intermode: WindDown, settings: windRate(1, 0.75)},
	{intermode: Traceable},
	{intermode: BarrelRoll, settings: fields(num("spin_speed", 0.5), text("direction", "Clockwise"))},
	{intermode: ApproachDifferent, settings: fields(num("scale", 4), text("style", "Gravity"))},
	{intermode: Muted, settings: mutedSettings()},
	{intermode: NoScope, settings: fields(num("hidden_combo_count", 10))},
	{intermode: Magnetised, settings: fields(num("attraction_strength", 0.5))},
	{intermode: Repel, settings: fields(num("repulsion_strength", 0.5))},
	{intermode: AdaptiveSpeed, settings: adaptiveSpeed()},
	{intermode: FreezeFrame},
	{intermode: Bubbles},
	{intermode: Synesthesia},
	{intermode: Depth, settings: fields(num("max_depth", 100), flag("show_approach_circles", true))},
	{intermode: Bloom, settings: fields(num("max_size_combo_count", 50), num("max_cursor_size", 10))},
	{intermode: TouchDevice},
	{intermode: ScoreV2},
}
