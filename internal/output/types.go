package output

import (
	"io"

	"github.com/fatih/color"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/writelog"
)

// Writer is an interface for log output writers.
type Writer interface {
	// Write writes the given bytes to the underlying output.
	Write(p []byte) (n int, err error)
	// Sync ensures that all data has been written.
	Sync() error
	// Close closes the writer and releases any resources.
	Close() error
}

type writerAdapter struct {
	writer io.Writer
}

// NewWriterAdapter wraps a basic io.Writer into a Writer interface implementation used by the output package.
func NewWriterAdapter(w io.Writer) Writer {
	if ow, ok := w.(Writer); ok && !isStandardStream(w) {
		return ow
	}

	return &writerAdapter{writer: w}
}

func (w *writerAdapter) Underlying() io.Writer {
	return w.writer
}

func (w *writerAdapter) Write(p []byte) (int, error) {
	bytes, err := w.writer.Write(p)
	if err != nil {
		return bytes, ewrap.Wrap(err, "failed to write to writer")
	}

	return bytes, nil
}

func (w *writerAdapter) Sync() error {
	if isStandardStream(w.writer) {
		return nil
	}

	if syncer, ok := w.writer.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}

	return nil
}

func (w *writerAdapter) Close() error {
	if isStandardStream(w.writer) {
		return nil
	}

	if closer, ok := w.writer.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			return ewrap.Wrap(err, "failed to close writer")
		}
	}

	return nil
}

// ColorMode determines how colors are handled.
type ColorMode int

const (
	// ColorModeAuto detects if the output supports colors.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways forces color output.
	ColorModeAlways
	// ColorModeNever disables color output.
	ColorModeNever
)

// ModeFor derives the color mode from the logger's color configuration.
func ModeFor(cfg writelog.ColorConfig) ColorMode {
	switch {
	case !cfg.Enable:
		return ColorModeNever
	case cfg.ForceTTY:
		return ColorModeAlways
	default:
		return ColorModeAuto
	}
}

// Attribute maps a named console color onto its terminal foreground attribute.
// Dark variants use the normal palette and the others the bright one.
//
//nolint:cyclop // one case per color.
func Attribute(c writelog.Color) (color.Attribute, bool) {
	//nolint:exhaustive // ColorUnset and unknown values are handled by default.
	switch c {
	case writelog.Black:
		return color.FgBlack, true
	case writelog.DarkBlue:
		return color.FgBlue, true
	case writelog.DarkGreen:
		return color.FgGreen, true
	case writelog.DarkCyan:
		return color.FgCyan, true
	case writelog.DarkRed:
		return color.FgRed, true
	case writelog.DarkMagenta:
		return color.FgMagenta, true
	case writelog.DarkYellow:
		return color.FgYellow, true
	case writelog.Gray:
		return color.FgWhite, true
	case writelog.DarkGray:
		return color.FgHiBlack, true
	case writelog.Blue:
		return color.FgHiBlue, true
	case writelog.Green:
		return color.FgHiGreen, true
	case writelog.Cyan:
		return color.FgHiCyan, true
	case writelog.Red:
		return color.FgHiRed, true
	case writelog.Magenta:
		return color.FgHiMagenta, true
	case writelog.Yellow:
		return color.FgHiYellow, true
	case writelog.White:
		return color.FgHiWhite, true
	default:
		return color.Reset, false
	}
}
