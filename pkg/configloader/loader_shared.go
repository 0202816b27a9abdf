package configloader

import (
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/writelog"
)

type rawConfig struct {
	LogLevel              string            `mapstructure:"log_level"                 yaml:"log_level"`
	WriteToHost           *bool             `mapstructure:"write_to_host"             yaml:"write_to_host"`
	HostTextColor         map[string]string `mapstructure:"host_text_color"           yaml:"host_text_color"`
	LogFileName           *string           `mapstructure:"log_file_name"             yaml:"log_file_name"`
	OverwriteLogFile      *bool             `mapstructure:"overwrite_log_file"        yaml:"overwrite_log_file"`
	IncludeDateInFileName *bool             `mapstructure:"include_date_in_file_name" yaml:"include_date_in_file_name"`
	MessageFormat         *string           `mapstructure:"message_format"            yaml:"message_format"`
	Color                 struct {
		Enable   *bool `mapstructure:"enable"    yaml:"enable"`
		ForceTTY *bool `mapstructure:"force_tty" yaml:"force_tty"`
	} `mapstructure:"color" yaml:"color"`
}

func applyRaw(raw rawConfig) (*writelog.Config, error) {
	cfg := writelog.DefaultConfig()

	if strings.TrimSpace(raw.LogLevel) != "" {
		level, err := writelog.ParseLogLevel(raw.LogLevel)
		if err != nil {
			return nil, err
		}

		cfg.LogLevel = level
	}

	if raw.WriteToHost != nil {
		cfg.WriteToHost = *raw.WriteToHost
	}

	err := applyHostColors(&cfg, raw.HostTextColor)
	if err != nil {
		return nil, err
	}

	if raw.LogFileName != nil {
		cfg.LogFileName = *raw.LogFileName
	}

	if raw.OverwriteLogFile != nil {
		cfg.OverwriteLogFile = *raw.OverwriteLogFile
	}

	if raw.IncludeDateInFileName != nil {
		cfg.IncludeDateInFileName = *raw.IncludeDateInFileName
	}

	if raw.MessageFormat != nil && strings.TrimSpace(*raw.MessageFormat) != "" {
		cfg.MessageFormat = *raw.MessageFormat
	}

	if raw.Color.Enable != nil {
		cfg.Color.Enable = *raw.Color.Enable
	}

	if raw.Color.ForceTTY != nil {
		cfg.Color.ForceTTY = *raw.Color.ForceTTY
	}

	return &cfg, nil
}

func applyHostColors(cfg *writelog.Config, colors map[string]string) error {
	for name, value := range colors {
		if strings.TrimSpace(value) == "" {
			continue
		}

		messageType, err := writelog.ParseMessageType(name)
		if err != nil {
			return ewrap.Wrap(err, "invalid host_text_color key").
				WithMetadata("key", name)
		}

		color, err := writelog.ParseColor(value)
		if err != nil {
			return ewrap.Wrap(err, "invalid host_text_color value").
				WithMetadata("key", name)
		}

		cfg.HostTextColor[messageType] = color
	}

	return nil
}

func allKeys() []string {
	keys := []string{
		"log_level",
		"write_to_host",
		"log_file_name",
		"overwrite_log_file",
		"include_date_in_file_name",
		"message_format",
		"color.enable",
		"color.force_tty",
	}

	for _, messageType := range writelog.AllMessageTypes() {
		keys = append(keys, "host_text_color."+strings.ToLower(messageType.String()))
	}

	return keys
}
