// Package constants defines shared constants, types, and configuration values
// used throughout the serenity core.
package constants

import (
	"os"
	"strconv"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the serenity binary and Init.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	ThemeEnvVar        = "SERENITY_THEME"
	ManifestEnvVar     = "SERENITY_MANIFEST"
	LocaleEnvVar       = "SERENITY_LOCALE"
	LogLevelEnvVar     = "LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	PowerDeviceEnvVar  = "POWER_DEVICE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// EnvInt32 reads a positive integer environment variable, or returns def.
func EnvInt32(name string, def int32) int32 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return def
	}
	return int32(v)
}

// Input is an abstract user input, mapped from keys or hardware buttons.
// Screens only ever see Inputs.
type Input int

const (
	InputNone Input = iota
	InputNext
	InputBack
	InputLeft
	InputRight
	InputConfirm
	InputToggle
)

// Inputs lists every assignable input.
var Inputs = []Input{InputNext, InputBack, InputLeft, InputRight, InputConfirm, InputToggle}

func (in Input) GetName() string {
	switch in {
	case InputNone:
		return "None"
	case InputNext:
		return "Next"
	case InputBack:
		return "Back"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputConfirm:
		return "Confirm"
	case InputToggle:
		return "Toggle"
	default:
		return "Unknown"
	}
}

func (in Input) String() string {
	return strings.ToLower(in.GetName())
}

// ParseInput converts a name such as "next" or "Confirm" to an Input.
func ParseInput(raw string) (Input, bool) {
	raw = strings.TrimSpace(raw)
	for _, in := range Inputs {
		if strings.EqualFold(in.GetName(), raw) {
			return in, true
		}
	}
	return InputNone, false
}

// Default window and layout constants for the preview host.
const (
	DefaultWindowWidth    int32 = 768
	DefaultWindowHeight   int32 = 1024
	DefaultTabStripHeight int32 = 96 // Height of the bottom tab strip
	DefaultTabIconSize    int32 = 48 // Rasterised edge length of a tab icon
)
