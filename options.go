package writelog

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Record is a fully classified log request.
type Record struct {
	// Message is rendered verbatim by the {Message} field. Empty is allowed.
	Message string
	// Type is the message type. Zero means Information.
	Type MessageType
	// Destination overrides Config.WriteToHost when set.
	Destination Destination
	// Color overrides the configured host color when set.
	Color Color
	// MessageFormat overrides Config.MessageFormat when not blank.
	MessageFormat string
	// CallerName bypasses stack inspection when not empty.
	CallerName string
}

// Options is the multi-switch calling convention. At most one Is* switch may be set,
// and only when MessageType is not. WriteToHost and WriteToStreams are mutually exclusive.
type Options struct {
	MessageType MessageType

	IsError                bool
	IsWarning              bool
	IsInformation          bool
	IsDebug                bool
	IsVerbose              bool
	IsSuccessResult        bool
	IsFailureResult        bool
	IsPartialFailureResult bool

	WriteToHost    bool
	WriteToStreams bool

	// HostTextColor is a console color name, validated against the named color set.
	HostTextColor string
	MessageFormat string
}

// Record resolves the switches into a Record carrying message.
func (o Options) Record(message string) (Record, error) {
	messageType, err := o.ResolveMessageType()
	if err != nil {
		return Record{}, err
	}

	destination, err := o.ResolveDestination()
	if err != nil {
		return Record{}, err
	}

	color := ColorUnset

	if strings.TrimSpace(o.HostTextColor) != "" {
		color, err = ParseColor(o.HostTextColor)
		if err != nil {
			return Record{}, ewrap.Wrap(err, "cannot validate argument on parameter 'HostTextColor'").
				WithMetadata("parameter", "HostTextColor")
		}
	}

	return Record{
		Message:       message,
		Type:          messageType,
		Destination:   destination,
		Color:         color,
		MessageFormat: o.MessageFormat,
	}, nil
}

// ResolveMessageType returns the single message type selected by the options.
// It defaults to Information when nothing is selected.
func (o Options) ResolveMessageType() (MessageType, error) {
	switches := []struct {
		set bool
		t   MessageType
	}{
		{o.IsError, MessageTypeError},
		{o.IsWarning, MessageTypeWarning},
		{o.IsInformation, MessageTypeInformation},
		{o.IsDebug, MessageTypeDebug},
		{o.IsVerbose, MessageTypeVerbose},
		{o.IsSuccessResult, MessageTypeSuccess},
		{o.IsFailureResult, MessageTypeFailure},
		{o.IsPartialFailureResult, MessageTypePartialFailure},
	}

	selected := MessageType(0)
	count := 0

	for _, sw := range switches {
		if sw.set {
			selected = sw.t
			count++
		}
	}

	if o.MessageType != 0 {
		if count > 0 {
			return 0, ewrap.Wrap(ErrParameterBinding, "MessageType cannot be combined with a message type switch").
				WithMetadata("message_type", o.MessageType.String())
		}

		if !o.MessageType.IsValid() {
			return 0, ewrap.Wrap(ErrInvalidMessageType, "message type value out of range").
				WithMetadata("message_type", uint8(o.MessageType))
		}

		return o.MessageType, nil
	}

	switch count {
	case 0:
		return MessageTypeInformation, nil
	case 1:
		return selected, nil
	default:
		return 0, ewrap.Wrap(ErrConfiguration, MsgMultipleMessageTypes).
			WithMetadata("switches", count)
	}
}

// ResolveDestination returns the destination selected by the switches, or
// DestinationUnset when neither is set.
func (o Options) ResolveDestination() (Destination, error) {
	switch {
	case o.WriteToHost && o.WriteToStreams:
		return DestinationUnset, ewrap.Wrap(ErrConfiguration, MsgMultipleDestinations)
	case o.WriteToHost:
		return DestinationHost, nil
	case o.WriteToStreams:
		return DestinationStreams, nil
	default:
		return DestinationUnset, nil
	}
}

// ResolveDestination applies the configured default to an unset destination.
func (c *Config) ResolveDestination(d Destination) Destination {
	if d != DestinationUnset {
		return d
	}

	if c.WriteToHost {
		return DestinationHost
	}

	return DestinationStreams
}
