package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/writelog"
	"github.com/hyp3rd/writelog/internal/constants"
)

func TestNewWithDefaults(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		logFile     string
		wantLevel   writelog.LogLevel
		wantHost    bool
		wantDate    bool
	}{
		{
			name:        "non-production environment",
			environment: constants.NonProductionEnvironment,
			logFile:     "dev.log",
			wantLevel:   writelog.LogLevelDebug,
			wantHost:    true,
		},
		{
			name:        "production environment",
			environment: constants.ProductionEnvironment,
			logFile:     "prod.log",
			wantLevel:   writelog.LogLevelInformation,
			wantDate:    true,
		},
		{
			name:      "empty environment",
			wantLevel: writelog.LogLevelInformation,
			wantDate:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewWithDefaults(tt.environment, tt.logFile)
			require.NoError(t, err)
			require.NotNil(t, log)

			config := log.GetConfig()
			assert.Equal(t, tt.wantLevel, config.LogLevel)
			assert.Equal(t, tt.wantHost, config.WriteToHost)
			assert.Equal(t, tt.wantDate, config.IncludeDateInFileName)
			assert.Equal(t, tt.logFile, config.LogFileName)
			assert.Equal(t, tt.wantHost, config.Color.Enable)
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("SVC_LOG_LEVEL", "verbose")
	t.Setenv("SVC_HOST_TEXT_COLOR_DEBUG", "blue")

	log, err := NewFromEnv("svc")
	require.NoError(t, err)

	assert.Equal(t, writelog.LogLevelVerbose, log.GetConfig().LogLevel)
	assert.Equal(t, writelog.Blue, log.GetConfig().HostTextColor[writelog.MessageTypeDebug])

	t.Setenv("SVC_LOG_LEVEL", "shouting")

	_, err = NewFromEnv("svc")
	require.ErrorIs(t, err, writelog.ErrInvalidLogLevel)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\nwrite_to_host: false\n"), 0o600))

	log, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, writelog.LogLevelError, log.GetConfig().LogLevel)
	assert.False(t, log.GetConfig().WriteToHost)

	_, err = NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
