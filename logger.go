// Package writelog defines a configurable, template-driven logging facility.
//
// A single entry point accepts a message plus classification metadata and routes the
// rendered text to one or more destinations:
// - the interactive host console, colored per message type
// - one of five OS-level streams (error, warning, information, debug, verbose)
// - an optional log file, with first-write overwrite and date-stamped naming
//
// Emission is governed by a severity threshold (LogLevel) and the text is produced from a
// user-supplied template such as "{Timestamp:hh:mm:ss} {MessageType}: {Message}".
//
// The interfaces and types in this package describe the contract. The routing engine is
// implemented by the adapter package, and the concrete console, stream and file writers
// live in internal/output.
//
// Basic usage:
//
//	log, err := adapter.NewAdapter(writelog.DefaultConfig())
//	if err != nil {
//		panic(err)
//	}
//
//	log.Information("Application started")
//	log.Success("Backup completed")
//
//	err = log.LogMessage("Disk almost full", writelog.Options{IsWarning: true, WriteToStreams: true})
//
// Configuration is held by pointer and is not synchronized. Hosts that log from several
// goroutines must serialize configuration changes and writes to the same log file.
package writelog

// LogLevel is the configured minimum severity threshold.
type LogLevel uint8

const (
	// LogLevelOff suppresses every message.
	LogLevelOff LogLevel = iota
	// LogLevelError emits errors only.
	LogLevelError
	// LogLevelWarning emits errors and warnings.
	LogLevelWarning
	// LogLevelInformation adds information and result messages.
	LogLevelInformation
	// LogLevelDebug adds debug messages.
	LogLevelDebug
	// LogLevelVerbose emits everything.
	LogLevelVerbose
)

// String returns the name of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "Off"
	case LogLevelError:
		return "Error"
	case LogLevelWarning:
		return "Warning"
	case LogLevelInformation:
		return "Information"
	case LogLevelDebug:
		return "Debug"
	case LogLevelVerbose:
		return "Verbose"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the given LogLevel is a valid log level, and false otherwise.
func (l LogLevel) IsValid() bool {
	return l <= LogLevelVerbose
}

// Allows reports whether a message of type t is emitted at this level.
// The decision is total: a suppressed event reaches no destination at all.
func (l LogLevel) Allows(t MessageType) bool {
	if !t.IsValid() {
		return false
	}

	return l >= t.Severity()
}

// Logger defines the interface for logging operations.
type Logger interface {
	// LogMessage logs through the legacy multi-switch surface.
	LogMessage(message string, opts Options) error
	// Log logs a fully classified record.
	Log(record Record) error

	TypedLogger

	// GetConfig returns the live configuration. Changes are visible to the next call.
	GetConfig() *Config
	// SetConfig replaces the configuration and resets the file sink state.
	SetConfig(config *Config)
	// Sync ensures all output has been written.
	Sync() error
}

// TypedLogger exposes one method per message type. Write failures are reported to the
// configured error handler instead of being returned.
type TypedLogger interface {
	Error(msg string)
	Warning(msg string)
	Information(msg string)
	Debug(msg string)
	Verbose(msg string)
	Success(msg string)
	Failure(msg string)
	PartialFailure(msg string)
}
