// Package config loads front-end settings from defaults, an optional
// blitz.yaml in the working directory, and BLITZ_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	SearchDepth int
	LogLevel    string
	Pretty      bool
}

// Load reads the configuration. A missing config file is not an error;
// anything else that goes wrong reading one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("search_depth", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("pretty", true)

	v.SetConfigName("blitz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("blitz")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		SearchDepth: v.GetInt("search_depth"),
		LogLevel:    v.GetString("log_level"),
		Pretty:      v.GetBool("pretty"),
	}, nil
}
