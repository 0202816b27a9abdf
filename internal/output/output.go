// Package output provides the concrete destinations used by the routing engine.
//
// This package implements the three collaborator interfaces of the writelog package:
// - ConsoleWriter (writelog.HostWriter) writes to the interactive console, painting each
//   line with its named console color when the output supports it
// - StreamWriter (writelog.StreamWriter) writes each line to exactly one of the
//   error, warning, information, debug and verbose streams
// - FileSystemWriter (writelog.FileWriter) creates or appends single lines to files
//
// Every writer writes one line per call and appends the newline itself.
package output

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"

	"github.com/hyp3rd/writelog"
)

const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o700
)

// ConsoleWriter writes host output with optional named colors.
type ConsoleWriter struct {
	mu         sync.Mutex
	out        io.Writer
	mode       ColorMode
	isTerminal bool
	closed     bool
}

// NewConsoleWriter creates a new ConsoleWriter.
// If the provided io.Writer is nil, it defaults to os.Stdout.
func NewConsoleWriter(out io.Writer, mode ColorMode) *ConsoleWriter {
	if out == nil {
		out = os.Stdout
	}

	return &ConsoleWriter{
		out:        out,
		mode:       mode,
		isTerminal: IsTerminal(out),
	}
}

// Ensure ConsoleWriter implements writelog.HostWriter.
var _ writelog.HostWriter = (*ConsoleWriter)(nil)

// WriteHost writes text followed by a newline, painted with c when colors apply.
func (w *ConsoleWriter) WriteHost(text string, c writelog.Color) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWriterClosed
	}

	line := text

	if attribute, ok := Attribute(c); ok && w.shouldUseColors() {
		painter := color.New(attribute)
		painter.EnableColor()

		line = painter.Sprint(text)
	}

	_, err := io.WriteString(w.out, line+"\n")
	if err != nil {
		return ewrap.Wrap(err, "failed writing to console output").
			WithMetadata("color", c.String())
	}

	return nil
}

// SetMode changes the color mode applied to subsequent writes.
func (w *ConsoleWriter) SetMode(mode ColorMode) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.mode = mode
}

// Sync synchronizes the underlying io.Writer if it implements the Sync() error interface.
func (w *ConsoleWriter) Sync() error {
	return NewWriterAdapter(w.out).Sync()
}

// Close closes the underlying io.Writer unless it is stdout or stderr.
func (w *ConsoleWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	err := NewWriterAdapter(w.out).Close()
	if err != nil {
		return ewrap.Wrap(err, "closing console writer")
	}

	return nil
}

// shouldUseColors determines if color output should be used based on mode and terminal support.
//
//nolint:exhaustive // ColorModeAuto is handled as default.
func (w *ConsoleWriter) shouldUseColors() bool {
	switch w.mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default: // ColorModeAuto
		return w.isTerminal
	}
}

// StreamWriter routes each line to the writer of one channel.
type StreamWriter struct {
	mu      sync.Mutex
	writers map[writelog.Channel]Writer
}

// NewStreamWriter creates a StreamWriter. Channels missing from writers default to
// os.Stderr for error and warning, and to os.Stdout otherwise.
func NewStreamWriter(writers map[writelog.Channel]io.Writer) *StreamWriter {
	resolved := make(map[writelog.Channel]Writer, len(defaultStreams()))

	for channel, fallback := range defaultStreams() {
		target := fallback
		if custom, ok := writers[channel]; ok && custom != nil {
			target = custom
		}

		resolved[channel] = NewWriterAdapter(target)
	}

	return &StreamWriter{writers: resolved}
}

// NewStandardStreams creates a StreamWriter bound to stdout and stderr.
func NewStandardStreams() *StreamWriter {
	return NewStreamWriter(nil)
}

func defaultStreams() map[writelog.Channel]io.Writer {
	return map[writelog.Channel]io.Writer{
		writelog.ChannelError:       os.Stderr,
		writelog.ChannelWarning:     os.Stderr,
		writelog.ChannelInformation: os.Stdout,
		writelog.ChannelDebug:       os.Stdout,
		writelog.ChannelVerbose:     os.Stdout,
	}
}

// Ensure StreamWriter implements writelog.StreamWriter.
var _ writelog.StreamWriter = (*StreamWriter)(nil)

// WriteStream writes text followed by a newline to the channel's writer only.
func (s *StreamWriter) WriteStream(text string, channel writelog.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writer, ok := s.writers[channel]
	if !ok {
		return ewrap.Wrap(ErrUnknownChannel, "no writer for channel").
			WithMetadata("channel", channel.String())
	}

	_, err := writer.Write([]byte(text + "\n"))
	if err != nil {
		return ewrap.Wrap(err, "failed writing to stream").
			WithMetadata("channel", channel.String())
	}

	return nil
}

// Sync syncs every distinct channel writer.
func (s *StreamWriter) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	errorGroup := ewrap.NewErrorGroup()
	seen := make(map[Writer]struct{}, len(s.writers))

	for _, writer := range s.writers {
		if _, dup := seen[writer]; dup {
			continue
		}

		seen[writer] = struct{}{}

		err := writer.Sync()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}

// FileSystemWriter creates and appends log lines on disk.
type FileSystemWriter struct {
	mu       sync.Mutex
	fileMode os.FileMode
}

// NewFileSystemWriter creates a FileSystemWriter that creates files with mode.
// A zero mode selects 0644.
func NewFileSystemWriter(mode os.FileMode) *FileSystemWriter {
	if mode == 0 {
		mode = defaultFileMode
	}

	return &FileSystemWriter{fileMode: mode}
}

// Ensure FileSystemWriter implements writelog.FileWriter.
var _ writelog.FileWriter = (*FileSystemWriter)(nil)

// Create replaces the contents of path with text and a newline.
func (w *FileSystemWriter) Create(path, text string) error {
	return w.write(path, text, os.O_CREATE|os.O_TRUNC|os.O_WRONLY)
}

// Append adds text and a newline to the end of path, creating the file if needed.
func (w *FileSystemWriter) Append(path, text string) error {
	return w.write(path, text, os.O_CREATE|os.O_APPEND|os.O_WRONLY)
}

func (w *FileSystemWriter) write(path, text string, flags int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, defaultDirMode)
	if err != nil {
		return ewrap.Wrapf(err, "creating log directory").
			WithMetadata("path", dir)
	}

	file, err := os.OpenFile(filepath.Clean(path), flags, w.fileMode)
	if err != nil {
		return ewrap.Wrapf(err, "opening log file").
			WithMetadata("path", path)
	}

	_, err = file.WriteString(text + "\n")
	if err != nil {
		closeErr := file.Close()
		if closeErr != nil {
			return ewrap.Wrapf(err, "failed writing to log file").
				WithMetadata("path", path).
				WithMetadata("close_error", closeErr.Error())
		}

		return ewrap.Wrapf(err, "failed writing to log file").
			WithMetadata("path", path)
	}

	err = file.Close()
	if err != nil {
		return ewrap.Wrapf(err, "closing log file").
			WithMetadata("path", path)
	}

	return nil
}

// IsTerminal checks if the given writer is a terminal. It returns true if the writer is
// connected to a terminal, and false otherwise. This function is used to determine
// whether to enable color support for log output.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		if f.Fd() == uintptr(syscall.Stdout) || f.Fd() == uintptr(syscall.Stderr) {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	return false
}

func isStandardStream(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (f == os.Stdout || f == os.Stderr)
}
