package fumosay

import "fmt"

// ColorMode controls when terminal colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a user-supplied string to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q: must be auto, always or never: %w", s, ErrValidation)
	}
}

// Config holds user preferences from the config file and command line.
// Style is kept as the name the user typed; unknown names fall back to
// Style1 when converted to Options.
type Config struct {
	Width    int
	Style    string
	Think    bool
	NoBubble bool
	Color    ColorMode
	Theme    Theme
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width: DefaultWidth,
		Style: Style1.String(),
		Color: ColorNever,
		Theme: DefaultTheme(),
	}
}

// Options converts the configuration to renderer options.
func (c Config) Options() Options {
	kind := Speech
	if c.Think {
		kind = Thought
	}
	return Options{
		Width:    c.Width,
		Kind:     kind,
		Style:    ParseStyle(c.Style),
		NoBubble: c.NoBubble,
	}
}
