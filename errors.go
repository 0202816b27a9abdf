package writelog

import (
	"github.com/hyp3rd/ewrap"
)

// Errors returned by the logging entry points. Every caller-facing validation failure
// matches ErrConfiguration with errors.Is.
var (
	// ErrConfiguration reports conflicting switches or invalid enum and color values.
	ErrConfiguration = ewrap.New("configuration error")

	// ErrParameterBinding is returned when an explicit message type is combined with a type switch.
	ErrParameterBinding = ewrap.Wrap(ErrConfiguration, "parameter set cannot be resolved using the specified named parameters")

	// ErrParameterValidation is returned when a parameter value is outside its allowed set.
	ErrParameterValidation = ewrap.Wrap(ErrConfiguration, "cannot validate argument")

	// ErrInvalidLogLevel is returned when a log level name cannot be parsed.
	ErrInvalidLogLevel = ewrap.Wrap(ErrConfiguration, "invalid log level")

	// ErrInvalidColor is returned when a color name is not a known console color.
	ErrInvalidColor = ewrap.Wrap(ErrParameterValidation, "invalid color")

	// ErrInvalidMessageType is returned when a message type value or name is unknown.
	ErrInvalidMessageType = ewrap.Wrap(ErrConfiguration, "invalid message type")

	// ErrFileSink wraps failures of the file sink. It never escapes a log call.
	ErrFileSink = ewrap.New("file sink error")
)

const (
	// MsgMultipleMessageTypes is the message of the error raised when two type switches are set.
	MsgMultipleMessageTypes = "Only one Message Type switch parameter may be set"
	// MsgMultipleDestinations is the message of the error raised when both destination switches are set.
	MsgMultipleDestinations = "Only one Destination switch parameter may be set"
)
