package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Render   Render `yaml:"render"`
}

type Render struct {
	Profile         string `yaml:"profile" env:"RENDER_PROFILE" env-default:"ansi256"`
	BackgroundColor string `yaml:"background-color" env:"RENDER_BACKGROUND_COLOR" env-default:"#FFFFFF"`
	HighlightColor  string `yaml:"highlight-color" env:"RENDER_HIGHLIGHT_COLOR" env-default:"#228B22"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
