// Package config loads Glossa's optional configuration.
//
// Every setting has a default, so Glossa runs without a file and without
// environment variables. When present, values come from (highest first)
// flags bound by the caller, GLOSSA_* environment variables, and a YAML
// file at ./config.yaml or $HOME/.config/glossa/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the Free Dictionary API entries endpoint for English.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type AudioConfig struct {
	// Player is the executable that plays a downloaded clip. The clip path
	// is appended after Args.
	Player string   `mapstructure:"player" validate:"required"`
	Args   []string `mapstructure:"args"`
	// Fallback lets the screen use the first clip found anywhere in the
	// response when the first phonetic has none.
	Fallback bool `mapstructure:"fallback"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	File  string `mapstructure:"file"`
}

// Loader reads configuration through a private viper instance so callers
// can bind their own flags before Load.
type Loader struct {
	v *viper.Viper
}

func NewLoader(configFile string) *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("$HOME", ".config", "glossa"))
	}

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("audio.player", "ffplay")
	v.SetDefault("audio.args", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"})
	v.SetDefault("audio.fallback", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "glossa.log"))

	v.SetEnvPrefix("glossa")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the file if one exists, unmarshals and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is a shortcut for NewLoader(configFile).Load().
func Load(configFile string) (*Config, error) {
	return NewLoader(configFile).Load()
}
