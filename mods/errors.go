package mods

import (
	"errors"
	"fmt"

	. "github.com/MingxuanGame/OsuMods/model"
)

var (
	// ErrInvalidAcronymLength is returned when an acronym is not 2 to 4 characters long.
	ErrInvalidAcronymLength = errors.New("acronym must be 2 to 4 characters long")

	// ErrInvalidAcronymChars is returned when an acronym contains anything but A-Z and 0-9.
	ErrInvalidAcronymChars = errors.New("acronym must only contain uppercase letters and digits")

	// ErrUnknownBits is returned by the strict bitmask decoders for bits no mod maps to.
	ErrUnknownBits = errors.New("unknown legacy mod bits")

	// ErrUnknownSetting is returned when setting a field the mod does not declare.
	ErrUnknownSetting = errors.New("unknown mod setting")

	// ErrZeroGameMod is returned when setting a field on the zero GameMod.
	ErrZeroGameMod = errors.New("zero GameMod has no settings")
)

// anyMode marks an UnknownModError raised without a game mode in context.
const anyMode GameMode = -1

// UnknownModError means there is no mod with Acronym in Mode.
type UnknownModError struct {
	Acronym string
	Mode    GameMode
}

func (e *UnknownModError) Error() string {
	if !e.Mode.IsValid() {
		return fmt.Sprintf("unknown mod %q", e.Acronym)
	}
	return fmt.Sprintf("unknown mod %q for mode %s", e.Acronym, e.Mode)
}

// MissingFieldError means a structurally required JSON field was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field `%s`", e.Field)
}

// SettingTypeError means a settings value does not match the declared field type.
type SettingTypeError struct {
	Acronym Acronym
	Field   string
	Want    SettingKind
}

func (e *SettingTypeError) Error() string {
	return fmt.Sprintf("setting `%s` of mod %s must be a %s", e.Field, e.Acronym, e.Want)
}
