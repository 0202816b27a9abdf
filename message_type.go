package writelog

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// MessageType classifies a log event. The zero value means "not set".
type MessageType uint8

const (
	// MessageTypeError is an error message.
	MessageTypeError MessageType = iota + 1
	// MessageTypeWarning is a warning message.
	MessageTypeWarning
	// MessageTypeInformation is an informational message.
	MessageTypeInformation
	// MessageTypeDebug is a debug message.
	MessageTypeDebug
	// MessageTypeVerbose is a verbose message.
	MessageTypeVerbose
	// MessageTypeSuccess reports a successful outcome.
	MessageTypeSuccess
	// MessageTypeFailure reports a failed outcome.
	MessageTypeFailure
	// MessageTypePartialFailure reports a partially failed outcome.
	MessageTypePartialFailure
)

// AllMessageTypes returns every message type in declaration order.
func AllMessageTypes() []MessageType {
	return []MessageType{
		MessageTypeError,
		MessageTypeWarning,
		MessageTypeInformation,
		MessageTypeDebug,
		MessageTypeVerbose,
		MessageTypeSuccess,
		MessageTypeFailure,
		MessageTypePartialFailure,
	}
}

// String returns the canonical uppercase name, e.g. "PARTIAL_FAILURE".
func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "ERROR"
	case MessageTypeWarning:
		return "WARNING"
	case MessageTypeInformation:
		return "INFORMATION"
	case MessageTypeDebug:
		return "DEBUG"
	case MessageTypeVerbose:
		return "VERBOSE"
	case MessageTypeSuccess:
		return "SUCCESS"
	case MessageTypeFailure:
		return "FAILURE"
	case MessageTypePartialFailure:
		return "PARTIAL_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether t is one of the eight defined message types.
func (t MessageType) IsValid() bool {
	return t >= MessageTypeError && t <= MessageTypePartialFailure
}

// IsResult reports whether t is one of SUCCESS, FAILURE or PARTIAL_FAILURE.
func (t MessageType) IsResult() bool {
	switch t {
	case MessageTypeSuccess, MessageTypeFailure, MessageTypePartialFailure:
		return true
	default:
		return false
	}
}

// Severity maps the message type onto the level used for filtering.
// Result types filter as Information.
func (t MessageType) Severity() LogLevel {
	//nolint:exhaustive // result types and unknown values are handled by default.
	switch t {
	case MessageTypeError:
		return LogLevelError
	case MessageTypeWarning:
		return LogLevelWarning
	case MessageTypeDebug:
		return LogLevelDebug
	case MessageTypeVerbose:
		return LogLevelVerbose
	default:
		return LogLevelInformation
	}
}

// Channel returns the stream channel that receives messages of this type.
func (t MessageType) Channel() Channel {
	//nolint:exhaustive // everything else goes to the information channel.
	switch t {
	case MessageTypeError:
		return ChannelError
	case MessageTypeWarning:
		return ChannelWarning
	case MessageTypeDebug:
		return ChannelDebug
	case MessageTypeVerbose:
		return ChannelVerbose
	default:
		return ChannelInformation
	}
}

// ParseMessageType parses a message type name case-insensitively.
// Both "PARTIAL_FAILURE" and "PartialFailure" are accepted.
func ParseMessageType(name string) (MessageType, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))

	for _, t := range AllMessageTypes() {
		if strings.ReplaceAll(t.String(), "_", "") == normalized {
			return t, nil
		}
	}

	return 0, ewrap.Wrap(ErrInvalidMessageType, "unknown message type "+name).
		WithMetadata("message_type", name)
}

// Channel identifies one of the OS-level output streams.
type Channel uint8

const (
	// ChannelInformation is the information stream.
	ChannelInformation Channel = iota
	// ChannelError is the error stream.
	ChannelError
	// ChannelWarning is the warning stream.
	ChannelWarning
	// ChannelDebug is the debug stream.
	ChannelDebug
	// ChannelVerbose is the verbose stream.
	ChannelVerbose
)

// String returns the name of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelInformation:
		return "information"
	case ChannelError:
		return "error"
	case ChannelWarning:
		return "warning"
	case ChannelDebug:
		return "debug"
	case ChannelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// Destination selects between the host console and the output streams.
type Destination uint8

const (
	// DestinationUnset defers to Config.WriteToHost.
	DestinationUnset Destination = iota
	// DestinationHost writes to the host console.
	DestinationHost
	// DestinationStreams writes to the stream matching the message type.
	DestinationStreams
)

// String returns the name of the destination.
func (d Destination) String() string {
	switch d {
	case DestinationHost:
		return "Host"
	case DestinationStreams:
		return "Streams"
	default:
		return "Unset"
	}
}
