// Package constants provides application-wide constant values
// used throughout the logging module. These constants define
// environment names, header names and context keys to ensure
// consistency across the codebase.
package constants

const (
	// NonProductionEnvironment is the environment name for non-production environments.
	NonProductionEnvironment = "development"
	// ProductionEnvironment is the environment name for production environments.
	ProductionEnvironment = "production"
)
