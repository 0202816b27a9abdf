package writelog

import (
	"maps"
	"os"
)

// ConfigBuilder provides a fluent API for constructing logger configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder with sensible defaults.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// WithLevel sets the logging level.
// Example: builder.WithLevel(writelog.LogLevelDebug).
func (b *ConfigBuilder) WithLevel(level LogLevel) *ConfigBuilder {
	b.config.LogLevel = level

	return b
}

// WithDebugLevel is a convenience method for WithLevel(LogLevelDebug).
func (b *ConfigBuilder) WithDebugLevel() *ConfigBuilder {
	return b.WithLevel(LogLevelDebug)
}

// WithVerboseLevel is a convenience method for WithLevel(LogLevelVerbose).
func (b *ConfigBuilder) WithVerboseLevel() *ConfigBuilder {
	return b.WithLevel(LogLevelVerbose)
}

// WithHostOutput makes the host console the default destination.
func (b *ConfigBuilder) WithHostOutput() *ConfigBuilder {
	b.config.WriteToHost = true

	return b
}

// WithStreamOutput makes the output streams the default destination.
func (b *ConfigBuilder) WithStreamOutput() *ConfigBuilder {
	b.config.WriteToHost = false

	return b
}

// WithHostTextColor sets the host color of a single message type.
// Example: builder.WithHostTextColor(writelog.MessageTypeSuccess, writelog.Green).
func (b *ConfigBuilder) WithHostTextColor(t MessageType, color Color) *ConfigBuilder {
	if b.config.HostTextColor == nil {
		b.config.HostTextColor = make(map[MessageType]Color)
	}

	b.config.HostTextColor[t] = color

	return b
}

// WithHostTextColors replaces the whole color map.
func (b *ConfigBuilder) WithHostTextColors(colors map[MessageType]Color) *ConfigBuilder {
	b.config.HostTextColor = maps.Clone(colors)

	return b
}

// WithFileOutput configures the log file path.
// The file will be created if it doesn't exist, and appended to if it does.
// Example: builder.WithFileOutput("/var/log/my_app.log").
func (b *ConfigBuilder) WithFileOutput(path string) *ConfigBuilder {
	b.config.LogFileName = path

	return b
}

// WithOverwrite truncates the log file on the first write of the run.
func (b *ConfigBuilder) WithOverwrite(overwrite bool) *ConfigBuilder {
	b.config.OverwriteLogFile = overwrite

	return b
}

// WithDateInFileName inserts the current date before the file extension.
// Example: app.log becomes app_20240131.log.
func (b *ConfigBuilder) WithDateInFileName(include bool) *ConfigBuilder {
	b.config.IncludeDateInFileName = include

	return b
}

// WithFileMode sets the permissions for new log files.
func (b *ConfigBuilder) WithFileMode(mode os.FileMode) *ConfigBuilder {
	b.config.FileMode = mode

	return b
}

// WithMessageFormat sets the default message template.
// Example: builder.WithMessageFormat("{Timestamp:hh:mm:ss} {MessageType}: {Message}").
func (b *ConfigBuilder) WithMessageFormat(format string) *ConfigBuilder {
	b.config.MessageFormat = format

	return b
}

// WithColors enables or disables color output.
// Example: builder.WithColors(true).
func (b *ConfigBuilder) WithColors(enable bool) *ConfigBuilder {
	b.config.Color.Enable = enable

	return b
}

// WithForceColors forces color output even when not writing to a terminal.
// Example: builder.WithForceColors(true).
func (b *ConfigBuilder) WithForceColors(force bool) *ConfigBuilder {
	b.config.Color.ForceTTY = force

	return b
}

// WithHook adds a named hook.
func (b *ConfigBuilder) WithHook(name string, hook Hook) *ConfigBuilder {
	b.config.Hooks = append(b.config.Hooks, HookConfig{Name: name, Hook: hook})

	return b
}

// WithErrorHandler sets the receiver of swallowed failures.
func (b *ConfigBuilder) WithErrorHandler(handler func(error)) *ConfigBuilder {
	b.config.ErrorHandler = handler

	return b
}

// WithDevelopmentDefaults configures the logger for interactive use.
// This enables debug level, host output and colors.
func (b *ConfigBuilder) WithDevelopmentDefaults() *ConfigBuilder {
	return b.
		WithDebugLevel().
		WithHostOutput().
		WithColors(true)
}

// WithProductionDefaults configures the logger for unattended processes.
// This enables information level, stream output, no colors and dated file names.
func (b *ConfigBuilder) WithProductionDefaults() *ConfigBuilder {
	return b.
		WithLevel(LogLevelInformation).
		WithStreamOutput().
		WithColors(false).
		WithDateInFileName(true)
}

// Build creates a Config object from the builder.
func (b *ConfigBuilder) Build() *Config {
	config := b.config
	config.HostTextColor = maps.Clone(b.config.HostTextColor)

	return &config
}
