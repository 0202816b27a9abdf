package writelog

// NoopLogger is a logger that does nothing.
type NoopLogger struct {
	config *Config
}

// NewNoop creates a new NoopLogger.
func NewNoop() Logger {
	config := DefaultConfig()
	config.LogLevel = LogLevelOff

	return &NoopLogger{
		config: &config,
	}
}

// Ensure NoopLogger implements Logger interface.
var _ Logger = (*NoopLogger)(nil)

// LogMessage validates the options and discards the message.
func (*NoopLogger) LogMessage(_ string, opts Options) error {
	_, err := opts.Record("")

	return err
}

// Log discards the record.
func (*NoopLogger) Log(_ Record) error { return nil }

// Error discards the message.
func (*NoopLogger) Error(_ string) {}

// Warning discards the message.
func (*NoopLogger) Warning(_ string) {}

// Information discards the message.
func (*NoopLogger) Information(_ string) {}

// Debug discards the message.
func (*NoopLogger) Debug(_ string) {}

// Verbose discards the message.
func (*NoopLogger) Verbose(_ string) {}

// Success discards the message.
func (*NoopLogger) Success(_ string) {}

// Failure discards the message.
func (*NoopLogger) Failure(_ string) {}

// PartialFailure discards the message.
func (*NoopLogger) PartialFailure(_ string) {}

// GetConfig returns the logger's configuration.
func (l *NoopLogger) GetConfig() *Config { return l.config }

// SetConfig replaces the configuration.
func (l *NoopLogger) SetConfig(config *Config) {
	if config != nil {
		l.config = config
	}
}

// Sync does nothing.
func (*NoopLogger) Sync() error { return nil }
