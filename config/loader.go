package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config = Default()

// DefaultPaths are searched in order when no config path is given
var DefaultPaths = []string{"config.yml", "./configs/config.yml"}

// Default returns the configuration used when no file is present
func Default() AppConfig {
	return AppConfig{
		Input:  "data/input.txt",
		Output: "xml/output.xml",
		Format: "xml",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist; with an empty path the DefaultPaths are
// searched and defaults are used if none is readable.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads and validates the configuration without touching the global Config
func Load(path string) (AppConfig, error) {
	cfg, err := Read(path)
	if err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Read returns the defaults overlaid with the config file, unvalidated.
// Callers that apply overrides validate the result themselves.
func Read(path string) (AppConfig, error) {
	cfg := Default()

	data, err := readConfig(path)
	if err != nil {
		return AppConfig{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func readConfig(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		return data, nil
	}
	for _, p := range DefaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", p, err)
		}
	}
	return nil, nil
}
