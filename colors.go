package writelog

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Color is one of the named console colors accepted for host output.
// The zero value means "not set".
type Color uint8

//nolint:revive // Pointless to comment the colors.
const (
	ColorUnset Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

//nolint:gochecknoglobals
var colorNames = [...]string{
	ColorUnset:  "",
	Black:       "Black",
	DarkBlue:    "DarkBlue",
	DarkGreen:   "DarkGreen",
	DarkCyan:    "DarkCyan",
	DarkRed:     "DarkRed",
	DarkMagenta: "DarkMagenta",
	DarkYellow:  "DarkYellow",
	Gray:        "Gray",
	DarkGray:    "DarkGray",
	Blue:        "Blue",
	Green:       "Green",
	Cyan:        "Cyan",
	Red:         "Red",
	Magenta:     "Magenta",
	Yellow:      "Yellow",
	White:       "White",
}

// DefaultInformationColor is used when neither the call nor the configuration provides a color.
const DefaultInformationColor = Cyan

// String returns the color name, e.g. "DarkYellow".
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}

	return "Unknown"
}

// IsValid reports whether c is a named console color.
func (c Color) IsValid() bool {
	return c >= Black && c <= White
}

// ParseColor parses a console color name case-insensitively.
// The returned error names the rejected value.
func ParseColor(name string) (Color, error) {
	trimmed := strings.TrimSpace(name)

	for c := Black; c <= White; c++ {
		if strings.EqualFold(colorNames[c], trimmed) {
			return c, nil
		}
	}

	return ColorUnset, ewrap.Wrap(ErrInvalidColor,
		"the argument \""+name+"\" does not belong to the set "+strings.Join(colorNames[Black:], ",")).
		WithMetadata("color", name)
}

// DefaultHostColors returns the default color for each message type.
func DefaultHostColors() map[MessageType]Color {
	return map[MessageType]Color{
		MessageTypeError:          Red,
		MessageTypeWarning:        Yellow,
		MessageTypeInformation:    DefaultInformationColor,
		MessageTypeDebug:          Gray,
		MessageTypeVerbose:        DarkGray,
		MessageTypeSuccess:        Green,
		MessageTypeFailure:        DarkRed,
		MessageTypePartialFailure: DarkYellow,
	}
}

// ColorConfig holds color-related configuration for host output.
type ColorConfig struct {
	// Enable enables colored output
	Enable bool
	// ForceTTY forces colored output even when the host is not a terminal
	ForceTTY bool
}

// DefaultColorConfig returns the default color configuration.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Enable:   true,
		ForceTTY: false,
	}
}
