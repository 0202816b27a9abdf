package caller

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/writelog"
)

func framesFromHelper(inspector *RuntimeInspector) []writelog.Frame {
	return inspector.CurrentFrames()
}

func runtimeFrame(function, file string) runtime.Frame {
	return runtime.Frame{Function: function, File: file}
}

func TestCurrentFramesSkipsModuleFrames(t *testing.T) {
	frames := framesFromHelper(NewRuntimeInspector())

	require.NotEmpty(t, frames)
	assert.Equal(t, "caller.TestCurrentFramesSkipsModuleFrames", frames[0].FunctionName)
	assert.Equal(t, "caller_test.go", filepath.Base(frames[0].ScriptName))

	for _, frame := range frames {
		assert.NotContains(t, frame.FunctionName, "framesFromHelper")
		assert.NotContains(t, frame.FunctionName, "tRunner")
	}
}

func TestCurrentFramesWithoutSkipPrefixes(t *testing.T) {
	frames := framesFromHelper(&RuntimeInspector{})

	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, "caller.(*RuntimeInspector).CurrentFrames", frames[0].FunctionName)
	assert.Equal(t, "caller.framesFromHelper", frames[1].FunctionName)
}

func TestCurrentFramesThroughInspectorCallerName(t *testing.T) {
	provider := writelog.InspectorCallerName{Inspector: NewRuntimeInspector()}

	assert.Equal(t, "caller.TestCurrentFramesThroughInspectorCallerName", provider.CallerName())
}

func TestShortFunctionName(t *testing.T) {
	tests := map[string]string{
		"github.com/acme/app/pkg.(*Server).Start": "pkg.(*Server).Start",
		"main.main":                               "main.main",
		"github.com/acme/app.Run.func1":           "app.Run.func1",
	}

	for input, want := range tests {
		assert.Equal(t, want, ShortFunctionName(input), input)
	}
}

func TestTopLevelFrames(t *testing.T) {
	tests := []struct {
		function string
		topLevel bool
	}{
		{"main.main", true},
		{"github.com/acme/app/config.init", true},
		{"github.com/acme/app/config.init.0", true},
		{"github.com/acme/app/config.init.func1", true},
		{"github.com/acme/app/config.initialize", false},
		{"main.run", false},
	}

	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			assert.Equal(t, tt.topLevel, isTopLevel(tt.function))
		})
	}
}

func TestToFrameMapsTopLevelToScript(t *testing.T) {
	frame := toFrame(runtimeFrame("main.main", "/src/app/main.go"))

	assert.Equal(t, writelog.Frame{ScriptName: "/src/app/main.go"}, frame)
	assert.Equal(t, "Script main.go", writelog.CallerNameFromFrames([]writelog.Frame{frame}))

	named := toFrame(runtimeFrame("github.com/acme/app/jobs.Backup", "/src/app/jobs/backup.go"))
	assert.Equal(t, "jobs.Backup", writelog.CallerNameFromFrames([]writelog.Frame{named}))
}
