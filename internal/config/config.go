package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// DefaultConfig returns a configuration built purely from defaults, without
// consulting files or the environment. Used by tests and embedders.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		logrus.WithError(err).Fatal("error unmarshaling default config")
	}

	return &config
}

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	if err := setupViperConfig(v, configFile); err != nil {
		return nil, err
	}

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(config, v); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) error {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if home := os.Getenv("HOME"); len(home) > 0 {
		v.AddConfigPath(filepath.Join(home, ".config", "gebeya"))
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix("GEBEYA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	bindEnvironmentVariables(v)

	return nil
}

// bindEnvironmentVariables binds the host hand-off variables explicitly so
// they resolve even when no config file mentions them.
func bindEnvironmentVariables(v *viper.Viper) {
	bindings := map[string]string{
		"api.base_url":      "GEBEYA_API_URL",
		"host.init_data":    "GEBEYA_INIT_DATA",
		"host.theme_params": "GEBEYA_THEME_PARAMS",
		"host.color_scheme": "GEBEYA_COLOR_SCHEME",
		"host.platform":     "GEBEYA_PLATFORM",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"key": key,
				"env": env,
			}).Warn("Failed to bind environment variable")
		}
	}
}

func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and environment cover it
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.prefix", "/api/v1")

	v.SetDefault("host.init_data", "")
	v.SetDefault("host.theme_params", "")
	v.SetDefault("host.color_scheme", "light")
	v.SetDefault("host.platform", "unknown")

	v.SetDefault("session.path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config, v *viper.Viper) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	// Dump out the config settings if in debug mode
	if logrusLevel >= logrus.DebugLevel {
		for key, value := range v.AllSettings() {
			logrus.Debugf("Config '%s': %v\n", key, value)
		}
	}

	return nil
}
