package writelog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"
)

const (
	// DefaultLevel is the default logging level.
	DefaultLevel = LogLevelInformation
	// DefaultMessageFormat is the template applied when neither the call nor the configuration sets one.
	DefaultMessageFormat = "{Timestamp} [{CallerName}] {MessageType}: {Message}"
	// LogFilePermissions are the default file permissions for log files.
	LogFilePermissions = 0o666
)

// HookConfig defines a hook to be called after an event is emitted.
type HookConfig struct {
	// Name is the name of the hook.
	Name string
	// Hook is the hook to call.
	Hook Hook
}

// Config is the active logging configuration.
//
// A Logger holds it by pointer and reads it on every call, so mutations are visible to
// the next log call. Derived state (the compiled template and the resolved file path)
// is keyed by the values it was computed from and is refreshed when they change.
type Config struct {
	// LogLevel is the minimum severity that is emitted.
	LogLevel LogLevel
	// WriteToHost selects the host console as default destination; false selects the streams.
	WriteToHost bool
	// HostTextColor maps each message type to its host color.
	HostTextColor map[MessageType]Color
	// LogFileName is the log file path. Blank disables the file sink.
	LogFileName string
	// OverwriteLogFile truncates the log file on the first write of the run.
	OverwriteLogFile bool
	// IncludeDateInFileName inserts _yyyyMMdd before the file extension.
	IncludeDateInFileName bool
	// MessageFormat is the default message template.
	MessageFormat string
	// Color configures terminal color handling.
	Color ColorConfig
	// FileMode sets the permissions for new log files.
	FileMode os.FileMode
	// Hooks contains hooks to be called after emission.
	Hooks []HookConfig
	// ErrorHandler receives failures that must not abort a log call.
	ErrorHandler func(error)
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel:              DefaultLevel,
		WriteToHost:           true,
		HostTextColor:         DefaultHostColors(),
		LogFileName:           "",
		OverwriteLogFile:      false,
		IncludeDateInFileName: false,
		MessageFormat:         DefaultMessageFormat,
		Color:                 DefaultColorConfig(),
		FileMode:              LogFilePermissions,
		Hooks:                 make([]HookConfig, 0),
		ErrorHandler:          StderrErrorHandler,
	}
}

// ProductionConfig returns a configuration suited to unattended processes.
// Output goes to the streams, colors are off and the log file carries the date.
func ProductionConfig() Config {
	config := DefaultConfig()
	config.WriteToHost = false
	config.Color.Enable = false
	config.IncludeDateInFileName = true

	return config
}

// DevelopmentConfig returns a configuration for interactive use with colored,
// debug-level host output.
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.LogLevel = LogLevelDebug
	config.WriteToHost = true
	config.Color.Enable = true
	config.MessageFormat = "{Timestamp:hh:mm:ss} [{CallerName}] {MessageType}: {Message}"

	return config
}

// HostColor returns the configured color for t, falling back to the Information color
// and then to DefaultInformationColor.
func (c *Config) HostColor(t MessageType) Color {
	if color, ok := c.HostTextColor[t]; ok && color.IsValid() {
		return color
	}

	if color, ok := c.HostTextColor[MessageTypeInformation]; ok && color.IsValid() {
		return color
	}

	return DefaultInformationColor
}

// HasLogFile reports whether a non-blank log file name is configured.
func (c *Config) HasLogFile() bool {
	return strings.TrimSpace(c.LogFileName) != ""
}

// ReportError hands err to the ErrorHandler, or to StderrErrorHandler when none is set.
func (c *Config) ReportError(err error) {
	if err == nil {
		return
	}

	if c == nil || c.ErrorHandler == nil {
		StderrErrorHandler(err)

		return
	}

	c.ErrorHandler(err)
}

// StderrErrorHandler writes the error as a single line to stderr.
func StderrErrorHandler(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "writelog %s: %v\n", time.Now().Format(time.RFC3339), err)
}

// ParseLogLevel parses the given log level string case-insensitively.
// "warn" and "info" are accepted as short forms.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "none":
		return LogLevelOff, nil
	case "error":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarning, nil
	case "info", "information":
		return LogLevelInformation, nil
	case "debug":
		return LogLevelDebug, nil
	case "verbose", "trace":
		return LogLevelVerbose, nil
	default:
		return LogLevelOff, ewrap.Wrap(ErrInvalidLogLevel, "invalid log level: "+level).
			WithMetadata("level", level)
	}
}
