// Package config provides Viper-based hierarchical configuration management:
// built-in defaults, an optional config.yaml, then EXTRATO_* environment
// variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	XLSX struct {
		Sheet string `mapstructure:"sheet" yaml:"sheet"`
	} `mapstructure:"xlsx" yaml:"xlsx"`

	Heuristics struct {
		RequireDate   bool     `mapstructure:"require_date" yaml:"require_date"`
		MinNumbers    int      `mapstructure:"min_numbers" yaml:"min_numbers"`
		Contains      []string `mapstructure:"contains" yaml:"contains"`
		KeepAllLines  bool     `mapstructure:"keep_all_lines" yaml:"keep_all_lines"`
		StopwordsFile string   `mapstructure:"stopwords_file" yaml:"stopwords_file"`
	} `mapstructure:"heuristics" yaml:"heuristics"`

	PDF struct {
		TableMode  bool `mapstructure:"table_mode" yaml:"table_mode"`
		Tolerances struct {
			Snap float64 `mapstructure:"snap" yaml:"snap"`
			Join float64 `mapstructure:"join" yaml:"join"`
		} `mapstructure:"tolerances" yaml:"tolerances"`
	} `mapstructure:"pdf" yaml:"pdf"`
}

// Load initializes Viper configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.extrato-xlsx")
	v.AddConfigPath(".extrato-xlsx")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXTRATO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file falls back to defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("xlsx.sheet", "extrato")

	v.SetDefault("heuristics.require_date", true)
	v.SetDefault("heuristics.min_numbers", 2)
	v.SetDefault("heuristics.contains", []string{})
	v.SetDefault("heuristics.keep_all_lines", false)
	v.SetDefault("heuristics.stopwords_file", "")

	v.SetDefault("pdf.table_mode", false)
	v.SetDefault("pdf.tolerances.snap", 2.0)
	v.SetDefault("pdf.tolerances.join", 12.0)
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Heuristics.MinNumbers < 0 {
		return fmt.Errorf("heuristics.min_numbers must not be negative, got: %d", config.Heuristics.MinNumbers)
	}

	return nil
}

// ConfigureLogging builds a logrus logger from the Config.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
