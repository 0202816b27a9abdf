package writelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTypeClassification(t *testing.T) {
	tests := []struct {
		messageType MessageType
		name        string
		severity    LogLevel
		channel     Channel
		result      bool
	}{
		{MessageTypeError, "ERROR", LogLevelError, ChannelError, false},
		{MessageTypeWarning, "WARNING", LogLevelWarning, ChannelWarning, false},
		{MessageTypeInformation, "INFORMATION", LogLevelInformation, ChannelInformation, false},
		{MessageTypeDebug, "DEBUG", LogLevelDebug, ChannelDebug, false},
		{MessageTypeVerbose, "VERBOSE", LogLevelVerbose, ChannelVerbose, false},
		{MessageTypeSuccess, "SUCCESS", LogLevelInformation, ChannelInformation, true},
		{MessageTypeFailure, "FAILURE", LogLevelInformation, ChannelInformation, true},
		{MessageTypePartialFailure, "PARTIAL_FAILURE", LogLevelInformation, ChannelInformation, true},
	}

	require.Len(t, tests, len(AllMessageTypes()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.messageType.IsValid())
			assert.Equal(t, tt.name, tt.messageType.String())
			assert.Equal(t, tt.severity, tt.messageType.Severity())
			assert.Equal(t, tt.channel, tt.messageType.Channel())
			assert.Equal(t, tt.result, tt.messageType.IsResult())
		})
	}
}

func TestMessageTypeInvalid(t *testing.T) {
	for _, messageType := range []MessageType{0, 9, 255} {
		assert.False(t, messageType.IsValid())
		assert.False(t, messageType.IsResult())
		assert.Equal(t, "UNKNOWN", messageType.String())
	}
}

func TestParseMessageType(t *testing.T) {
	tests := map[string]MessageType{
		"error":           MessageTypeError,
		"Warning":         MessageTypeWarning,
		"INFORMATION":     MessageTypeInformation,
		" debug ":         MessageTypeDebug,
		"verbose":         MessageTypeVerbose,
		"Success":         MessageTypeSuccess,
		"failure":         MessageTypeFailure,
		"PARTIAL_FAILURE": MessageTypePartialFailure,
		"PartialFailure":  MessageTypePartialFailure,
		"partial_failure": MessageTypePartialFailure,
	}

	for input, want := range tests {
		got, err := ParseMessageType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseMessageType("fatal")
	require.ErrorIs(t, err, ErrInvalidMessageType)
	assert.Contains(t, err.Error(), "fatal")
}

func TestChannelAndDestinationStrings(t *testing.T) {
	assert.Equal(t, "error", ChannelError.String())
	assert.Equal(t, "verbose", ChannelVerbose.String())
	assert.Equal(t, "unknown", Channel(42).String())

	assert.Equal(t, "Host", DestinationHost.String())
	assert.Equal(t, "Streams", DestinationStreams.String())
	assert.Equal(t, "Unset", DestinationUnset.String())
}
