// Package adapter provides the concrete implementation of the writelog.Logger interface.
//
// The adapter is the routing engine: it filters each record by the configured level,
// renders it through the compiled message template, and routes the text to exactly one
// of the host console or the output streams. When a log file is configured the same
// text is also written to the file, independently of the primary destination.
//
// Every log call is synchronous. The configuration is read on each call, so changes
// made through GetConfig are visible to the next call.
package adapter

import (
	"os"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/writelog"
	"github.com/hyp3rd/writelog/internal/caller"
	"github.com/hyp3rd/writelog/internal/filesink"
	"github.com/hyp3rd/writelog/internal/output"
	"github.com/hyp3rd/writelog/internal/template"
)

// Adapter implements the writelog.Logger interface.
type Adapter struct {
	config       *writelog.Config
	hookRegistry *writelog.HookRegistry
	formats      *template.Cache
	files        *filesink.Manager

	// console is the default host writer; its color mode follows config.Color.
	console *output.ConsoleWriter
	host    writelog.HostWriter
	streams writelog.StreamWriter
	clock   writelog.Clock
	caller  writelog.CallerNameProvider
}

// Option customizes the collaborators of an Adapter.
type Option func(*Adapter)

// WithHostWriter replaces the console writer.
func WithHostWriter(w writelog.HostWriter) Option {
	return func(a *Adapter) {
		if w != nil {
			a.host = w
		}
	}
}

// WithStreamWriter replaces the stream writer.
func WithStreamWriter(w writelog.StreamWriter) Option {
	return func(a *Adapter) {
		if w != nil {
			a.streams = w
		}
	}
}

// WithFileWriter replaces the file writer used by the file sink.
func WithFileWriter(w writelog.FileWriter) Option {
	return func(a *Adapter) {
		if w != nil {
			a.files = filesink.NewManager(w)
		}
	}
}

// WithClock replaces the time source.
func WithClock(clock writelog.Clock) Option {
	return func(a *Adapter) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithCallerNameProvider replaces the {CallerName} resolver.
func WithCallerNameProvider(provider writelog.CallerNameProvider) Option {
	return func(a *Adapter) {
		if provider != nil {
			a.caller = provider
		}
	}
}

// WithCallStackInspector resolves {CallerName} from the frames returned by inspector.
func WithCallStackInspector(inspector writelog.CallStackInspector) Option {
	return func(a *Adapter) {
		if inspector != nil {
			a.caller = writelog.InspectorCallerName{Inspector: inspector}
		}
	}
}

// NewAdapter creates a new logger adapter with the given configuration.
// Collaborators not set through opts default to stdout for the host console,
// stdout and stderr for the streams, the local file system for the log file,
// the system clock and the runtime call stack.
func NewAdapter(config writelog.Config, opts ...Option) (*Adapter, error) {
	err := validateConfig(&config)
	if err != nil {
		return nil, err
	}

	console := output.NewConsoleWriter(os.Stdout, output.ModeFor(config.Color))

	adapter := &Adapter{
		config:  &config,
		formats: template.NewCache(),
		files:   filesink.NewManager(output.NewFileSystemWriter(config.FileMode)),
		console: console,
		host:    console,
		streams: output.NewStandardStreams(),
		clock:   writelog.SystemClock(),
		caller:  writelog.InspectorCallerName{Inspector: caller.NewRuntimeInspector()},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	adapter.hookRegistry, err = registryFor(&config)
	if err != nil {
		return nil, err
	}

	return adapter, nil
}

func validateConfig(config *writelog.Config) error {
	if !config.LogLevel.IsValid() {
		return ewrap.Wrap(writelog.ErrInvalidLogLevel, "log level out of range").
			WithMetadata("log_level", uint8(config.LogLevel))
	}

	for messageType, color := range config.HostTextColor {
		if !messageType.IsValid() {
			return ewrap.Wrap(writelog.ErrInvalidMessageType, "host text color set for an unknown message type").
				WithMetadata("message_type", uint8(messageType))
		}

		if !color.IsValid() {
			return ewrap.Wrap(writelog.ErrInvalidColor, "host text color out of range").
				WithMetadata("message_type", messageType.String()).
				WithMetadata("color", uint8(color))
		}
	}

	return nil
}

func registryFor(config *writelog.Config) (*writelog.HookRegistry, error) {
	registry := writelog.NewHookRegistry()

	for _, hookConfig := range config.Hooks {
		err := registry.AddHook(hookConfig.Name, hookConfig.Hook)
		if err != nil {
			return nil, ewrap.Wrap(err, "registering hook").
				WithMetadata("hook", hookConfig.Name)
		}
	}

	return registry, nil
}

// Ensure Adapter implements writelog.Logger.
var _ writelog.Logger = (*Adapter)(nil)

// LogMessage resolves the switches of opts and logs message.
func (a *Adapter) LogMessage(message string, opts writelog.Options) error {
	record, err := opts.Record(message)
	if err != nil {
		return err
	}

	return a.Log(record)
}

// Log filters, renders and routes a single record.
// Failures of the log file are reported to the ErrorHandler and never returned.
func (a *Adapter) Log(record writelog.Record) error {
	config := a.config

	messageType := record.Type
	if messageType == 0 {
		messageType = writelog.MessageTypeInformation
	}

	err := validateConfig(config)
	if err != nil {
		return err
	}

	err = validateRecord(record, messageType)
	if err != nil {
		return err
	}

	if !config.LogLevel.Allows(messageType) {
		return nil
	}

	entry := &writelog.Entry{
		Message:     record.Message,
		Type:        messageType,
		Timestamp:   a.clock.Now(),
		CallerName:  record.CallerName,
		Destination: config.ResolveDestination(record.Destination),
	}

	format := a.formats.Get(messageFormat(config, record))

	if entry.CallerName == "" && format.Has(template.FieldCallerName) {
		entry.CallerName = a.caller.CallerName()
	}

	entry.Text = template.Render(format, template.Values{
		Message:    entry.Message,
		Type:       entry.Type,
		Time:       entry.Timestamp,
		CallerName: entry.CallerName,
	})

	err = a.route(entry, record.Color)

	a.writeFile(entry)
	a.fireHooks(entry)

	return err
}

func validateRecord(record writelog.Record, messageType writelog.MessageType) error {
	if !messageType.IsValid() {
		return ewrap.Wrap(writelog.ErrInvalidMessageType, "message type value out of range").
			WithMetadata("message_type", uint8(messageType))
	}

	if record.Color != writelog.ColorUnset && !record.Color.IsValid() {
		return ewrap.Wrap(writelog.ErrInvalidColor, "cannot validate argument on parameter 'HostTextColor'").
			WithMetadata("color", uint8(record.Color))
	}

	if record.Destination > writelog.DestinationStreams {
		return ewrap.Wrap(writelog.ErrParameterValidation, "destination value out of range").
			WithMetadata("destination", uint8(record.Destination))
	}

	return nil
}

func messageFormat(config *writelog.Config, record writelog.Record) string {
	if strings.TrimSpace(record.MessageFormat) != "" {
		return record.MessageFormat
	}

	if strings.TrimSpace(config.MessageFormat) != "" {
		return config.MessageFormat
	}

	return writelog.DefaultMessageFormat
}

// route writes the text to the entry's destination, exactly one of host or streams.
func (a *Adapter) route(entry *writelog.Entry, color writelog.Color) error {
	var err error

	if entry.Destination == writelog.DestinationHost {
		entry.Color = color
		if entry.Color == writelog.ColorUnset {
			entry.Color = a.config.HostColor(entry.Type)
		}

		if a.console != nil && a.host == writelog.HostWriter(a.console) {
			a.console.SetMode(output.ModeFor(a.config.Color))
		}

		err = a.host.WriteHost(entry.Text, entry.Color)
	} else {
		err = a.streams.WriteStream(entry.Text, entry.Type.Channel())
	}

	if err != nil {
		return ewrap.Wrap(err, "writing log message").
			WithMetadata("destination", entry.Destination.String()).
			WithMetadata("message_type", entry.Type.String())
	}

	return nil
}

func (a *Adapter) writeFile(entry *writelog.Entry) {
	config := a.config
	if !config.HasLogFile() {
		return
	}

	path, _, err := a.files.Write(
		config.LogFileName,
		config.OverwriteLogFile,
		config.IncludeDateInFileName,
		entry.Timestamp,
		entry.Text,
	)
	if err != nil {
		a.reportError(err)

		return
	}

	entry.FilePath = path
}

func (a *Adapter) fireHooks(entry *writelog.Entry) {
	for _, err := range a.hookRegistry.FireHooks(entry) {
		a.reportError(ewrap.Wrap(err, "hook execution failed").
			WithMetadata("message_type", entry.Type.String()))
	}
}

func (a *Adapter) reportError(err error) {
	a.config.ReportError(err)
}

// Error logs an ERROR message.
func (a *Adapter) Error(msg string) {
	a.logTyped(writelog.MessageTypeError, msg)
}

// Warning logs a WARNING message.
func (a *Adapter) Warning(msg string) {
	a.logTyped(writelog.MessageTypeWarning, msg)
}

// Information logs an INFORMATION message.
func (a *Adapter) Information(msg string) {
	a.logTyped(writelog.MessageTypeInformation, msg)
}

// Debug logs a DEBUG message.
func (a *Adapter) Debug(msg string) {
	a.logTyped(writelog.MessageTypeDebug, msg)
}

// Verbose logs a VERBOSE message.
func (a *Adapter) Verbose(msg string) {
	a.logTyped(writelog.MessageTypeVerbose, msg)
}

// Success logs a SUCCESS result.
func (a *Adapter) Success(msg string) {
	a.logTyped(writelog.MessageTypeSuccess, msg)
}

// Failure logs a FAILURE result.
func (a *Adapter) Failure(msg string) {
	a.logTyped(writelog.MessageTypeFailure, msg)
}

// PartialFailure logs a PARTIAL_FAILURE result.
func (a *Adapter) PartialFailure(msg string) {
	a.logTyped(writelog.MessageTypePartialFailure, msg)
}

func (a *Adapter) logTyped(messageType writelog.MessageType, msg string) {
	err := a.Log(writelog.Record{Message: msg, Type: messageType})
	if err != nil {
		a.reportError(err)
	}
}

// GetConfig returns the active configuration. Mutations apply to the next log call.
func (a *Adapter) GetConfig() *writelog.Config {
	return a.config
}

// SetConfig replaces the active configuration. The log file written-state is reset,
// so the next write in overwrite mode replaces the file again, and the hooks are
// re-registered from the new configuration. A configuration that fails validation
// is reported to the ErrorHandler and ignored.
func (a *Adapter) SetConfig(config *writelog.Config) {
	if config == nil {
		return
	}

	err := validateConfig(config)
	if err != nil {
		a.reportError(err)

		return
	}

	registry, err := registryFor(config)
	if err != nil {
		a.reportError(err)

		return
	}

	a.config = config
	a.hookRegistry = registry
	a.files.Reset()
}

// Hooks returns the hook registry of the adapter.
func (a *Adapter) Hooks() *writelog.HookRegistry {
	return a.hookRegistry
}

// Sync flushes the host and stream writers when they support it.
func (a *Adapter) Sync() error {
	errorGroup := ewrap.NewErrorGroup()

	for _, candidate := range []any{a.host, a.streams} {
		syncer, ok := candidate.(interface{ Sync() error })
		if !ok {
			continue
		}

		err := syncer.Sync()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return ewrap.Wrap(errorGroup, "syncing log writers")
	}

	return nil
}
