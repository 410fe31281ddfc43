package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision = 2
	DefaultTheme     = "slate"
	DefaultDataDir   = ".matrixlab"
)

// Config holds application settings. CLI flags override file values.
type Config struct {
	Precision int    `yaml:"precision"` // display decimals
	Theme     string `yaml:"theme"`
	DataDir   string `yaml:"data"` // history directory
}

func DefaultConfig() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
