// Package configloader builds writelog configurations from environment variables,
// YAML documents and YAML files.
//
// Keys use snake case and nest with dots; environment variables use the upper-cased
// key with dots replaced by underscores, behind a prefix:
//
//	log_level                      WRITELOG_LOG_LEVEL
//	write_to_host                  WRITELOG_WRITE_TO_HOST
//	host_text_color.<type>         WRITELOG_HOST_TEXT_COLOR_PARTIAL_FAILURE
//	log_file_name                  WRITELOG_LOG_FILE_NAME
//	overwrite_log_file             WRITELOG_OVERWRITE_LOG_FILE
//	include_date_in_file_name      WRITELOG_INCLUDE_DATE_IN_FILE_NAME
//	message_format                 WRITELOG_MESSAGE_FORMAT
//	color.enable                   WRITELOG_COLOR_ENABLE
//	color.force_tty                WRITELOG_COLOR_FORCE_TTY
//
// Keys that are not set keep their writelog.DefaultConfig value.
package configloader

import (
	"bytes"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/hyp3rd/writelog"
)

const defaultEnvPrefix = "WRITELOG"

// FromEnv loads configuration sourced from environment variables using the provided prefix.
// An empty prefix selects WRITELOG.
func FromEnv(prefix string) (*writelog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, normalizePrefix(prefix))
	if err != nil {
		return nil, err
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromYAML loads configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (*writelog.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read YAML configuration")
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromFile loads configuration from a YAML file and merges environment overrides using the default prefix.
func FromFile(path string) (*writelog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, defaultEnvPrefix)
	if err != nil {
		return nil, err
	}

	viperInstance.SetConfigFile(path)

	err = viperInstance.ReadInConfig()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read configuration file").
			WithMetadata("path", path)
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

func loadRawFromViper(viperInstance *viper.Viper) (rawConfig, error) {
	var raw rawConfig

	for _, key := range allKeys() {
		if !viperInstance.IsSet(key) {
			continue
		}

		viperInstance.Set(key, viperInstance.Get(key))
	}

	err := viperInstance.Unmarshal(&raw)
	if err != nil {
		return rawConfig{}, ewrap.Wrap(err, "failed to decode configuration")
	}

	return raw, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	replacer := strings.NewReplacer(".", "_")
	viperInstance.SetEnvKeyReplacer(replacer)

	if prefix != "" {
		viperInstance.SetEnvPrefix(prefix)
	}

	viperInstance.AutomaticEnv()

	errorGroup := ewrap.NewErrorGroup()

	for _, key := range allKeys() {
		err := viperInstance.BindEnv(key)
		if err != nil {
			errorGroup.Add(ewrap.Wrap(err, "failed to bind environment key").
				WithMetadata("key", key).
				WithMetadata("prefix", prefix))
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return defaultEnvPrefix
	}

	prefix = strings.TrimSuffix(prefix, "_")
	prefix = strings.ReplaceAll(prefix, "-", "_")

	return strings.ToUpper(prefix)
}
