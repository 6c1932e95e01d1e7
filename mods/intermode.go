package mods

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// GameModIntermode is the identity of a mod independent of the game mode,
// e.g. Hidden is the same identity for every mode that has it.
type GameModIntermode uint8

//goland:noinspection ALL
const (
	Easy GameModIntermode = iota
	NoFail
	HalfTime
	Daycore
	NoRelease
	HardRock
	SuddenDeath
	Perfect
	DoubleTime
	Nightcore
	FadeIn
	Hidden
	Cover
	Flashlight
	Blinds
	StrictTracking
	AccuracyChallenge
	TargetPractice
	DifficultyAdjust
	Classic
	Random
	Mirror
	Alternate
	SingleTap
	Swap
	SimplifiedRhythm
	ConstantSpeed
	DualStages
	Invert
	HoldOff
	OneKey
	TwoKeys
	ThreeKeys
	FourKeys
	FiveKeys
	SixKeys
	SevenKeys
	EightKeys
	NineKeys
	TenKeys
	Autoplay
	Cinema
	Relax
	Autopilot
	SpunOut
	Transform
	Wiggle
	SpinIn
	Grow
	Deflate
	WindUp
	WindDown
	Traceable
	BarrelRoll
	ApproachDifferent
	Muted
	NoScope
	Magnetised
	Repel
	AdaptiveSpeed
	FreezeFrame
	Bubbles
	Synesthesia
	Depth
	Bloom
	FloatingFruits
	MovingFast
	TouchDevice
	ScoreV2

	intermodeCount
)

type intermodeInfo struct {
	name         string
	acronym      string
	bits         uint32
	kind         GameModKind
	description  string
	incompatible []GameModIntermode
}

var keyMods = []GameModIntermode{OneKey, TwoKeys, ThreeKeys, FourKeys, FiveKeys, SixKeys, SevenKeys, EightKeys, NineKeys, TenKeys}

func otherKeyMods(key GameModIntermode) []GameModIntermode {
	others := make([]GameModIntermode, 0, len(keyMods)-1)
	for _, k := range keyMods {
		if k != key {
			others = append(others, k)
		}
	}
	return others
}

func keyModDescription(n int) string {
	return fmt.Sprintf("Play with %d keys.", n)
}

var rateMods = []GameModIntermode{HalfTime, Daycore, DoubleTime, Nightcore, WindUp, WindDown, AdaptiveSpeed}

func otherRateMods(mod GameModIntermode) []GameModIntermode {
	others := make([]GameModIntermode, 0, len(rateMods)-1)
	for _, m := range rateMods {
		if m != mod {
			others = append(others, m)
		}
	}
	return others
}

var intermodeInfos = [intermodeCount]intermodeInfo{
	Easy: {
		name: "Easy", acronym: "EZ", bits: 1 << 1, kind: KindDifficultyReduction,
		description:  "Larger circles, more forgiving HP drain, less accuracy required, and three lives!",
		incompatible: []GameModIntermode{HardRock, AccuracyChallenge, DifficultyAdjust},
	},
	NoFail: {
		name: "NoFail", acronym: "NF", bits: 1 << 0, kind: KindDifficultyReduction,
		description:  "You can't fail, no matter what.",
		incompatible: []GameModIntermode{SuddenDeath, Perfect, AccuracyChallenge, Cinema},
	},
	HalfTime: {
		name: "HalfTime", acronym: "HT", bits: 1 << 8, kind: KindDifficultyReduction,
		description:  "Less zoom...",
		incompatible: otherRateMods(HalfTime),
	},
	Daycore: {
		name: "Daycore", acronym: "DC", kind: KindDifficultyReduction,
		description:  "Whoaaaaa...",
		incompatible: otherRateMods(Daycore),
	},
	NoRelease: {
		name: "NoRelease", acronym: "NR", kind: KindDifficultyReduction,
		description:  "No more timing the end of hold notes.",
		incompatible: []GameModIntermode{HoldOff},
	},
	HardRock: {
		name: "HardRock", acronym: "HR", bits: 1 << 4, kind: KindDifficultyIncrease,
		description:  "Everything just got a bit harder...",
		incompatible: []GameModIntermode{Easy, DifficultyAdjust, Mirror},
	},
	SuddenDeath: {
		name: "SuddenDeath", acronym: "SD", bits: 1 << 5, kind: KindDifficultyIncrease,
		description:  "Miss and fail.",
		incompatible: []GameModIntermode{NoFail, Perfect, AccuracyChallenge, TargetPractice, Cinema},
	},
	Perfect: {
		name: "Perfect", acronym: "PF", bits: 1 << 14, kind: KindDifficultyIncrease,
		description:  "SS or quit.",
		incompatible: []GameModIntermode{NoFail, SuddenDeath, AccuracyChallenge, Cinema},
	},
	DoubleTime: {
		name: "DoubleTime", acronym: "DT", bits: 1 << 6, kind: KindDifficultyIncrease,
		description:  "Zoooooooooom...",
		incompatible: otherRateMods(DoubleTime),
	},
	Nightcore: {
		name: "Nightcore", acronym: "NC", bits: 1 << 9, kind: KindDifficultyIncrease,
		description:  "Uguuuuuuuu...",
		incompatible: otherRateMods(Nightcore),
	},
	FadeIn: {
		name: "FadeIn", acronym: "FI", bits: 1 << 20, kind: KindDifficultyIncrease,
		description:  "Keys appear out of nowhere!",
		incompatible: []GameModIntermode{Hidden, Cover, Flashlight},
	},
	Hidden: {
		name: "Hidden", acronym: "HD", bits: 1 << 3, kind: KindDifficultyIncrease,
		description:  "Play with no approach circles and fading circles/sliders.",
		incompatible: []GameModIntermode{FadeIn, Cover, SpinIn, Traceable, ApproachDifferent, Depth},
	},
	Cover: {
		name: "Cover", acronym: "CO", kind: KindDifficultyIncrease,
		description:  "Decrease the playfield's viewing area.",
		incompatible: []GameModIntermode{FadeIn, Hidden, Flashlight},
	},
	Flashlight: {
		name: "Flashlight", acronym: "FL", bits: 1 << 10, kind: KindDifficultyIncrease,
		description:  "Restricted view area.",
		incompatible: []GameModIntermode{FadeIn, Cover, Blinds, Bloom},
	},
	Blinds: {
		name: "Blinds", acronym: "BL", kind: KindDifficultyIncrease,
		description:  "Play with blinds on your screen.",
		incompatible: []GameModIntermode{Flashlight},
	},
	StrictTracking: {
		name: "StrictTracking", acronym: "ST", kind: KindDifficultyIncrease,
		description:  "Once you start a slider, follow precisely or get a miss.",
		incompatible: []GameModIntermode{TargetPractice, Classic},
	},
	AccuracyChallenge: {
		name: "AccuracyChallenge", acronym: "AC", kind: KindDifficultyIncrease,
		description:  "Fail if your accuracy drops too low!",
		incompatible: []GameModIntermode{Easy, NoFail, SuddenDeath, Perfect, Cinema},
	},
	TargetPractice: {
		name: "TargetPractice", acronym: "TP", bits: 1 << 23, kind: KindConversion,
		description:  "Practice keeping up with the beat of the song.",
		incompatible: []GameModIntermode{SuddenDeath, StrictTracking, DifficultyAdjust, Random, SpunOut, Transform, Wiggle, SpinIn, Traceable, Magnetised, Repel, Depth},
	},
	DifficultyAdjust: {
		name: "DifficultyAdjust", acronym: "DA", kind: KindConversion,
		description:  "Override a beatmap's difficulty settings.",
		incompatible: []GameModIntermode{Easy, HardRock, TargetPractice},
	},
	Classic: {
		name: "Classic", acronym: "CL", kind: KindConversion,
		description:  "Feeling nostalgic?",
		incompatible: []GameModIntermode{StrictTracking},
	},
	Random: {
		name: "Random", acronym: "RD", bits: 1 << 21, kind: KindConversion,
		description:  "It never gets boring!",
		incompatible: []GameModIntermode{TargetPractice, Swap},
	},
	Mirror: {
		name: "Mirror", acronym: "MR", bits: 1 << 30, kind: KindConversion,
		description:  "Flip objects on the chosen axes.",
		incompatible: []GameModIntermode{HardRock},
	},
	Alternate: {
		name: "Alternate", acronym: "AL", kind: KindConversion,
		description:  "Don't use the same key twice in a row!",
		incompatible: []GameModIntermode{SingleTap, Autoplay, Cinema, Relax, Autopilot},
	},
	SingleTap: {
		name: "SingleTap", acronym: "SG", kind: KindConversion,
		description:  "You must only use one key!",
		incompatible: []GameModIntermode{Alternate, Autoplay, Cinema, Relax, Autopilot},
	},
	Swap: {
		name: "Swap", acronym: "SW", kind: KindConversion,
		description:  "Dons become kats, kats become dons",
		incompatible: []GameModIntermode{Random},
	},
	SimplifiedRhythm: {
		name: "SimplifiedRhythm", acronym: "SR", kind: KindConversion,
		description: "Simplify tricky rhythms!",
	},
	ConstantSpeed: {
		name: "ConstantSpeed", acronym: "CS", kind: KindConversion,
		description: "No more tricky speed changes!",
	},
	DualStages: {
		name: "DualStages", acronym: "DS", bits: 1 << 25, kind: KindConversion,
		description: "Double the stages, double the fun!",
	},
	Invert: {
		name: "Invert", acronym: "IN", kind: KindConversion,
		description:  "Hold the keys. To the beat.",
		incompatible: []GameModIntermode{HoldOff},
	},
	HoldOff: {
		name: "HoldOff", acronym: "HO", kind: KindConversion,
		description:  "Replaces all hold notes with normal notes.",
		incompatible: []GameModIntermode{NoRelease, Invert},
	},
	OneKey: {
		name: "OneKey", acronym: "1K", bits: 1 << 26, kind: KindConversion,
		description: keyModDescription(1), incompatible: otherKeyMods(OneKey),
	},
	TwoKeys: {
		name: "TwoKeys", acronym: "2K", bits: 1 << 28, kind: KindConversion,
		description: keyModDescription(2), incompatible: otherKeyMods(TwoKeys),
	},
	ThreeKeys: {
		name: "ThreeKeys", acronym: "3K", bits: 1 << 27, kind: KindConversion,
		description: keyModDescription(3), incompatible: otherKeyMods(ThreeKeys),
	},
	FourKeys: {
		name: "FourKeys", acronym: "4K", bits: 1 << 15, kind: KindConversion,
		description: keyModDescription(4), incompatible: otherKeyMods(FourKeys),
	},
	FiveKeys: {
		name: "FiveKeys", acronym: "5K", bits: 1 << 16, kind: KindConversion,
		description: keyModDescription(5), incompatible: otherKeyMods(FiveKeys),
	},
	SixKeys: {
		name: "SixKeys", acronym: "6K", bits: 1 << 17, kind: KindConversion,
		description: keyModDescription(6), incompatible: otherKeyMods(SixKeys),
	},
	SevenKeys: {
		name: "SevenKeys", acronym: "7K", bits: 1 << 18, kind: KindConversion,
		description: keyModDescription(7), incompatible: otherKeyMods(SevenKeys),
	},
	EightKeys: {
		name: "EightKeys", acronym: "8K", bits: 1 << 19, kind: KindConversion,
		description: keyModDescription(8), incompatible: otherKeyMods(EightKeys),
	},
	NineKeys: {
		name: "NineKeys", acronym: "9K", bits: 1 << 24, kind: KindConversion,
		description: keyModDescription(9), incompatible: otherKeyMods(NineKeys),
	},
	TenKeys: {
		name: "TenKeys", acronym: "10K", kind: KindConversion,
		description: keyModDescription(10), incompatible: otherKeyMods(TenKeys),
	},
	Autoplay: {
		name: "Autoplay", acronym: "AT", bits: 1 << 11, kind: KindAutomation,
		description:  "Watch a perfect automated play through the song.",
		incompatible: []GameModIntermode{Cinema, Relax, Autopilot, SpunOut, Alternate, SingleTap, Magnetised, Repel, AdaptiveSpeed, TouchDevice},
	},
	Cinema: {
		name: "Cinema", acronym: "CN", bits: 1 << 22, kind: KindAutomation,
		description:  "Watch the video without visual distractions.",
		incompatible: []GameModIntermode{NoFail, SuddenDeath, Perfect, AccuracyChallenge, Autoplay, Relax, Autopilot, SpunOut, Alternate, SingleTap, Magnetised, Repel, AdaptiveSpeed, TouchDevice},
	},
	Relax: {
		name: "Relax", acronym: "RX", bits: 1 << 7, kind: KindAutomation,
		description:  "You don't need to click. Give your clicking/tapping fingers a break from the heat of things.",
		incompatible: []GameModIntermode{Autoplay, Cinema, Autopilot, Alternate, SingleTap, Magnetised},
	},
	Autopilot: {
		name: "Autopilot", acronym: "AP", bits: 1 << 13, kind: KindAutomation,
		description:  "Automatic cursor movement - just follow the rhythm.",
		incompatible: []GameModIntermode{Autoplay, Cinema, Relax, SpunOut, Alternate, SingleTap, Magnetised, Repel, TouchDevice},
	},
	SpunOut: {
		name: "SpunOut", acronym: "SO", bits: 1 << 12, kind: KindAutomation,
		description:  "Spinners will be automatically completed.",
		incompatible: []GameModIntermode{Autoplay, Cinema, Autopilot, TargetPractice},
	},
	Transform: {
		name: "Transform", acronym: "TR", kind: KindFun,
		description:  "Everything rotates. EVERYTHING.",
		incompatible: []GameModIntermode{TargetPractice, Wiggle, Magnetised, Repel, FreezeFrame, Depth},
	},
	Wiggle: {
		name: "Wiggle", acronym: "WG", kind: KindFun,
		description:  "They just won't stay still...",
		incompatible: []GameModIntermode{TargetPractice, Transform, Magnetised, Repel, Depth},
	},
	SpinIn: {
		name: "SpinIn", acronym: "SI", kind: KindFun,
		description:  "Circles spin in. No approach circles.",
		incompatible: []GameModIntermode{Hidden, TargetPractice, Grow, Deflate, Traceable, ApproachDifferent},
	},
	Grow: {
		name: "Grow", acronym: "GR", kind: KindFun,
		description:  "Hit them at the right size!",
		incompatible: []GameModIntermode{SpinIn, Deflate, Traceable, ApproachDifferent},
	},
	Deflate: {
		name: "Deflate", acronym: "DF", kind: KindFun,
		description:  "Hit them at the right size!",
		incompatible: []GameModIntermode{SpinIn, Grow, Traceable, ApproachDifferent},
	},
	WindUp: {
		name: "WindUp", acronym: "WU", kind: KindFun,
		description:  "Can you keep up?",
		incompatible: otherRateMods(WindUp),
	},
	WindDown: {
		name: "WindDown", acronym: "WD", kind: KindFun,
		description:  "Sloooow doooown...",
		incompatible: otherRateMods(WindDown),
	},
	Traceable: {
		name: "Traceable", acronym: "TC", kind: KindFun,
		description:  "Put your faith in the approach circles...",
		incompatible: []GameModIntermode{Hidden, TargetPractice, SpinIn, Grow, Deflate, Depth, Bloom},
	},
	BarrelRoll: {
		name: "BarrelRoll", acronym: "BR", kind: KindFun,
		description: "The whole playfield is on a wheel!",
	},
	ApproachDifferent: {
		name: "ApproachDifferent", acronym: "AD", kind: KindFun,
		description:  "Never trust the approach circles...",
		incompatible: []GameModIntermode{Hidden, SpinIn, Grow, Deflate, FreezeFrame},
	},
	Muted: {
		name: "Muted", acronym: "MU", kind: KindFun,
		description: "Can you still feel the rhythm without music?",
	},
	NoScope: {
		name: "NoScope", acronym: "NS", kind: KindFun,
		description:  "Where's the cursor?",
		incompatible: []GameModIntermode{Bloom},
	},
	Magnetised: {
		name: "Magnetised", acronym: "MG", kind: KindFun,
		description:  "No need to chase the circles - your cursor is a magnet!",
		incompatible: []GameModIntermode{TargetPractice, Autoplay, Cinema, Relax, Autopilot, Transform, Wiggle, Repel, Bubbles, Depth},
	},
	Repel: {
		name: "Repel", acronym: "RP", kind: KindFun,
		description:  "Hit objects run away!",
		incompatible: []GameModIntermode{TargetPractice, Autoplay, Cinema, Autopilot, Transform, Wiggle, Magnetised, Bubbles, Depth},
	},
	AdaptiveSpeed: {
		name: "AdaptiveSpeed", acronym: "AS", kind: KindFun,
		description:  "Let track speed adapt to you.",
		incompatible: append(otherRateMods(AdaptiveSpeed), Autoplay, Cinema),
	},
	FreezeFrame: {
		name: "FreezeFrame", acronym: "FR", kind: KindFun,
		description:  "Burn the notes into your memory.",
		incompatible: []GameModIntermode{Transform, ApproachDifferent, Depth},
	},
	Bubbles: {
		name: "Bubbles", acronym: "BU", kind: KindFun,
		description:  "Don't let their popping distract you!",
		incompatible: []GameModIntermode{Magnetised, Repel},
	},
	Synesthesia: {
		name: "Synesthesia", acronym: "SY", kind: KindFun,
		description: "Colours hit objects based on the rhythm.",
	},
	Depth: {
		name: "Depth", acronym: "DP", kind: KindFun,
		description:  "3D. Almost.",
		incompatible: []GameModIntermode{Hidden, TargetPractice, Transform, Wiggle, Traceable, Magnetised, Repel, FreezeFrame},
	},
	Bloom: {
		name: "Bloom", acronym: "BM", kind: KindFun,
		description:  "The cursor blooms into.. a larger cursor!",
		incompatible: []GameModIntermode{Flashlight, Traceable, NoScope},
	},
	FloatingFruits: {
		name: "FloatingFruits", acronym: "FF", kind: KindFun,
		description: "The fruits are... floating?",
	},
	MovingFast: {
		name: "MovingFast", acronym: "MF", kind: KindFun,
		description: "Dashing by default, slow down!",
	},
	TouchDevice: {
		name: "TouchDevice", acronym: "TD", bits: 1 << 2, kind: KindSystem,
		description:  "Automatically applied to plays on devices with a touchscreen.",
		incompatible: []GameModIntermode{Autoplay, Cinema, Autopilot},
	},
	ScoreV2: {
		name: "ScoreV2", acronym: "SV2", bits: 1 << 29, kind: KindSystem,
		description: "Score set on earlier osu! versions with the V2 scoring algorithm active.",
	},
}

var (
	intermodeAcronyms   = buildIntermodeAcronyms()
	intermodeByAcronym  = buildIntermodeIndex()
	intermodesByBitsAsc = buildBitsOrder()
)

func buildIntermodeAcronyms() [intermodeCount]Acronym {
	var acronyms [intermodeCount]Acronym
	for i := range intermodeInfos {
		acronyms[i] = mustAcronym(intermodeInfos[i].acronym)
	}
	return acronyms
}

func buildIntermodeIndex() map[Acronym]GameModIntermode {
	index := make(map[Acronym]GameModIntermode, intermodeCount)
	for i, acronym := range intermodeAcronyms {
		index[acronym] = GameModIntermode(i)
	}
	return index
}

func buildBitsOrder() []GameModIntermode {
	var ordered []GameModIntermode
	for i := range intermodeInfos {
		if intermodeInfos[i].bits != 0 {
			ordered = append(ordered, GameModIntermode(i))
		}
	}
	sortIntermodes(ordered)
	return ordered
}

// IntermodeFromAcronym looks up the identity for an acronym, case-sensitively.
func IntermodeFromAcronym(acronym string) (GameModIntermode, bool) {
	a, err := ParseAcronym(acronym)
	if err != nil {
		return 0, false
	}
	id, ok := intermodeByAcronym[a]
	return id, ok
}

// AllIntermodes returns every known mod identity in canonical order.
func AllIntermodes() []GameModIntermode {
	all := make([]GameModIntermode, intermodeCount)
	for i := range all {
		all[i] = GameModIntermode(i)
	}
	sortIntermodes(all)
	return all
}

func (m GameModIntermode) valid() bool {
	return m < intermodeCount
}

func (m GameModIntermode) Name() string {
	if !m.valid() {
		return fmt.Sprintf("GameModIntermode(%d)", uint8(m))
	}
	return intermodeInfos[m].name
}

func (m GameModIntermode) String() string {
	return m.Name()
}

func (m GameModIntermode) Acronym() Acronym {
	if !m.valid() {
		return Acronym{}
	}
	return intermodeAcronyms[m]
}

// Bits returns the legacy bitmask value, ok is false for mods without one.
func (m GameModIntermode) Bits() (uint32, bool) {
	if !m.valid() || intermodeInfos[m].bits == 0 {
		return 0, false
	}
	return intermodeInfos[m].bits, true
}

func (m GameModIntermode) Kind() GameModKind {
	if !m.valid() {
		return KindSystem
	}
	return intermodeInfos[m].kind
}

// index is the legacy bit position plus one.
func (m GameModIntermode) index() (uint8, bool) {
	b, ok := m.Bits()
	if !ok {
		return 0, false
	}
	return uint8(bits.TrailingZeros32(b)) + 1, true
}

func (m GameModIntermode) incompatible() []GameModIntermode {
	if !m.valid() {
		return nil
	}
	return intermodeInfos[m].incompatible
}

// Compare orders mods with a legacy bit first, by bit value, then the rest by acronym.
func (m GameModIntermode) Compare(other GameModIntermode) int {
	a, aOk := m.Bits()
	b, bOk := other.Bits()
	switch {
	case aOk && bOk:
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	case aOk:
		return -1
	case bOk:
		return 1
	}
	return m.Acronym().Compare(other.Acronym())
}

func (m GameModIntermode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Acronym().String())
}

func (m *GameModIntermode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id, ok := IntermodeFromAcronym(s)
	if !ok {
		return fmt.Errorf("unknown mod acronym %q", s)
	}
	*m = id
	return nil
}
