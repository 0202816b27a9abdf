// Package caller inspects the goroutine's call stack to find the first frame outside
// the logging module.
package caller

import (
	"runtime"
	"strings"

	"github.com/hyp3rd/writelog"
)

const (
	// ModulePath is the import path prefix of the logging module.
	ModulePath = "github.com/hyp3rd/writelog"

	maxDepth = 64
)

// RuntimeInspector implements writelog.CallStackInspector using runtime.Callers.
//
// Frames whose function belongs to one of SkipPrefixes are dropped. Frames of the
// runtime and testing packages are dropped as well. A frame in main.main or in a
// package initializer is reported without a function name, as top-level code.
type RuntimeInspector struct {
	SkipPrefixes []string
}

// NewRuntimeInspector returns an inspector that skips the logging module's frames.
func NewRuntimeInspector() *RuntimeInspector {
	return &RuntimeInspector{
		SkipPrefixes: []string{ModulePath + ".", ModulePath + "/"},
	}
}

// CurrentFrames implements writelog.CallStackInspector.
func (r *RuntimeInspector) CurrentFrames() []writelog.Frame {
	pcs := make([]uintptr, maxDepth)

	n := runtime.Callers(1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	result := make([]writelog.Frame, 0, n)

	for {
		frame, more := frames.Next()

		if frame.Function != "" && !r.skip(frame.Function) {
			result = append(result, toFrame(frame))
		}

		if !more {
			break
		}
	}

	return result
}

func (r *RuntimeInspector) skip(function string) bool {
	if strings.HasPrefix(function, "runtime.") || strings.HasPrefix(function, "testing.") {
		return true
	}

	for _, prefix := range r.SkipPrefixes {
		if strings.HasPrefix(function, prefix) {
			return !isTestFunction(function)
		}
	}

	return false
}

func toFrame(frame runtime.Frame) writelog.Frame {
	name := ShortFunctionName(frame.Function)

	if isTopLevel(frame.Function) {
		name = ""
	}

	return writelog.Frame{
		ScriptName:   frame.File,
		FunctionName: name,
	}
}

// ShortFunctionName strips the import path from a fully qualified function name:
// "github.com/acme/app/pkg.(*Server).Start" becomes "pkg.(*Server).Start".
func ShortFunctionName(function string) string {
	if idx := strings.LastIndex(function, "/"); idx >= 0 {
		function = function[idx+1:]
	}

	return function
}

func isTopLevel(function string) bool {
	short := ShortFunctionName(function)

	if short == "main.main" {
		return true
	}

	// package initializers: pkg.init, pkg.init.0, pkg.init.func1
	_, rest, found := strings.Cut(short, ".")

	return found && (rest == "init" || strings.HasPrefix(rest, "init."))
}

// isTestFunction keeps test code of the module itself visible as a caller.
func isTestFunction(function string) bool {
	short := ShortFunctionName(function)

	_, rest, found := strings.Cut(short, ".")
	if !found {
		return false
	}

	return strings.HasPrefix(rest, "Test") || strings.HasPrefix(rest, "Benchmark") || strings.HasPrefix(rest, "Example")
}
