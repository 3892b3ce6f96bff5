// Package config loads the almacen configuration from a yaml file,
// environment variables or built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the almacen console.
type Config struct {
	// DatabasePath is the path of the SQLite inventory database.
	DatabasePath string `yaml:"database_path" mapstructure:"database_path"`
	// ActivityLogPath is the file user actions are appended to. Empty
	// disables the activity log.
	ActivityLogPath string `yaml:"activity_log_path" mapstructure:"activity_log_path"`
	// LogLevel is the application log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Load reads the configuration from the specified path and returns a
// Config struct. If path is empty, it searches the default locations; a
// missing config file falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("ALMACEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.almacen")
		v.AddConfigPath("/etc/almacen")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database_path", "inventario.db")
	v.SetDefault("activity_log_path", "log.txt")
	v.SetDefault("log_level", "info")
}

func validate(c *Config) error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	return nil
}
