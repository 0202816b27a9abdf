package writelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedFrames []Frame

func (f fixedFrames) CurrentFrames() []Frame {
	return f
}

func TestCallerNameFromFrames(t *testing.T) {
	tests := []struct {
		name   string
		frames []Frame
		want   string
	}{
		{name: "no frames", want: UnknownCaller},
		{name: "no script", frames: []Frame{{FunctionName: "ignored"}}, want: ConsoleCaller},
		{name: "top level", frames: []Frame{{ScriptName: "/opt/jobs/nightly.go"}}, want: "Script nightly.go"},
		{name: "function", frames: []Frame{{ScriptName: "/opt/jobs/nightly.go", FunctionName: "jobs.Run"}}, want: "jobs.Run"},
		{
			name: "first frame wins",
			frames: []Frame{
				{ScriptName: "/opt/jobs/nightly.go", FunctionName: "jobs.step"},
				{ScriptName: "/opt/jobs/nightly.go", FunctionName: "jobs.Run"},
			},
			want: "jobs.step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CallerNameFromFrames(tt.frames))
			assert.Equal(t, tt.want, InspectorCallerName{Inspector: fixedFrames(tt.frames)}.CallerName())
		})
	}
}

func TestCallerNameProviders(t *testing.T) {
	assert.Equal(t, UnknownCaller, InspectorCallerName{}.CallerName())
	assert.Equal(t, "worker", StaticCallerName("worker").CallerName())
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, fixed, ClockFunc(func() time.Time { return fixed }).Now())
	assert.WithinDuration(t, time.Now(), SystemClock().Now(), time.Second)
}
