// Package log provides application-level logger construction.
//
// It creates loggers with appropriate settings based on the environment
// (production or non-production):
//
// - In non-production environments: Debug level, colored host output with a short timestamp
// - In production environments: Information level, stream output, no colors and a
//   date-stamped log file
//
// Usage:
//
//	logger, err := log.NewWithDefaults("development", "logs/deploy.log")
//	if err != nil {
//		panic(err)
//	}
//
//	logger.Information("Deployment started")
//	logger.Success("Deployment finished")
package log

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/writelog"
	"github.com/hyp3rd/writelog/internal/constants"
	"github.com/hyp3rd/writelog/pkg/adapter"
	"github.com/hyp3rd/writelog/pkg/configloader"
)

// NewWithDefaults creates a new logger for the given environment. A non-blank logFile
// enables the file sink; in production the file name carries the current date.
func NewWithDefaults(environment, logFile string, opts ...adapter.Option) (writelog.Logger, error) {
	loggerCfg := writelog.ProductionConfig()
	if environment == constants.NonProductionEnvironment {
		loggerCfg = writelog.DevelopmentConfig()
	}

	loggerCfg.LogFileName = logFile

	log, err := adapter.NewAdapter(loggerCfg, opts...)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create logger").
			WithMetadata("environment", environment)
	}

	return log, nil
}

// NewFromEnv creates a logger configured from environment variables with the given prefix.
func NewFromEnv(prefix string, opts ...adapter.Option) (writelog.Logger, error) {
	loggerCfg, err := configloader.FromEnv(prefix)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to load logger configuration")
	}

	log, err := adapter.NewAdapter(*loggerCfg, opts...)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create logger")
	}

	return log, nil
}

// NewFromFile creates a logger configured from a YAML file with environment overrides.
func NewFromFile(path string, opts ...adapter.Option) (writelog.Logger, error) {
	loggerCfg, err := configloader.FromFile(path)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to load logger configuration")
	}

	log, err := adapter.NewAdapter(*loggerCfg, opts...)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create logger")
	}

	return log, nil
}
