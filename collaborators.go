package writelog

import (
	"path/filepath"
	"time"
)

// Sentinel caller names.
const (
	// UnknownCaller is rendered when no stack frame is available.
	UnknownCaller = "[UNKNOWN CALLER]"
	// ConsoleCaller is rendered when the calling frame has no source file.
	ConsoleCaller = "[CONSOLE]"
)

// HostWriter writes rendered text to the interactive console.
type HostWriter interface {
	WriteHost(text string, color Color) error
}

// StreamWriter writes rendered text to exactly one output stream.
type StreamWriter interface {
	WriteStream(text string, channel Channel) error
}

// FileWriter creates or appends a single line to a file.
type FileWriter interface {
	// Create replaces the file contents with text.
	Create(path, text string) error
	// Append adds text to the end of the file, creating it if absent.
	Append(path, text string) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns time.Now.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// Frame describes one stack frame outside the logging module.
// FunctionName is empty for top-level code.
type Frame struct {
	ScriptName   string
	FunctionName string
}

// CallStackInspector returns the caller's frames, innermost first, with the logging
// module's own frames already removed.
type CallStackInspector interface {
	CurrentFrames() []Frame
}

// CallerNameProvider resolves the name rendered by the {CallerName} field.
type CallerNameProvider interface {
	CallerName() string
}

// CallerNameFromFrames applies the caller-name fallback rules to the first frame:
// no frame yields UnknownCaller, a frame without a file yields ConsoleCaller, a frame
// without a function yields "Script <file>", otherwise the function name.
func CallerNameFromFrames(frames []Frame) string {
	if len(frames) == 0 {
		return UnknownCaller
	}

	frame := frames[0]

	switch {
	case frame.ScriptName == "":
		return ConsoleCaller
	case frame.FunctionName == "":
		return "Script " + filepath.Base(frame.ScriptName)
	default:
		return frame.FunctionName
	}
}

// InspectorCallerName adapts a CallStackInspector to CallerNameProvider.
type InspectorCallerName struct {
	Inspector CallStackInspector
}

// CallerName implements CallerNameProvider.
func (p InspectorCallerName) CallerName() string {
	if p.Inspector == nil {
		return UnknownCaller
	}

	return CallerNameFromFrames(p.Inspector.CurrentFrames())
}

// StaticCallerName always returns the same name.
type StaticCallerName string

// CallerName implements CallerNameProvider.
func (s StaticCallerName) CallerName() string {
	return string(s)
}
