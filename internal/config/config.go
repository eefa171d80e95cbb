package config

import (
	"errors"
	"fmt"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

// RelativePath is where the config file is searched for under the XDG config dirs.
const RelativePath = "tictactoe/config.yml"

var ErrNoColorProfile = errors.New("color profile is empty")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"text"`
	Color     string `yaml:"color" env:"TICTACTOE_COLOR" env-default:"auto"`
	Prompt    string `yaml:"prompt" env:"TICTACTOE_PROMPT" env-default:"> "`
}

// Load - reads the config file at path, or the environment alone when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Locate - returns the explicit path if set, else the first config file found
// in the XDG config dirs, else an empty string.
func Locate(explicit string) string {
	if explicit != "" {
		return explicit
	}

	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		return ""
	}

	return path
}

// Validate - checks values cleanenv cannot check by itself.
func (that *Config) Validate() error {
	if that.Color == "" {
		return ErrNoColorProfile
	}

	return nil
}
