package output

import (
	"github.com/hyp3rd/ewrap"
)

// Common errors for the output package.
var (
	// ErrWriterClosed is returned when attempting to write to a closed writer.
	ErrWriterClosed = ewrap.New("writer is closed")

	// ErrUnknownChannel is returned when a stream channel has no writer.
	ErrUnknownChannel = ewrap.New("unknown stream channel")
)
