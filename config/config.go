package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults a run starts from; command line flags override them.
type Config struct {
	TieBreak    string      `toml:"tie_break"`
	Format      string      `toml:"format"`
	LogLevel    string      `toml:"log_level"`
	MetricsFile string      `toml:"metrics_file"`
	Mongo       MongoConfig `toml:"mongo"`
}

type MongoConfig struct {
	Hosts    []string `toml:"hosts"`
	Database string   `toml:"database"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

func Default() *Config {
	return &Config{
		TieBreak: "kicker",
		Format:   FormatText,
		LogLevel: "warn",
		Mongo:    MongoConfig{Database: "showdown"},
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format: %s", c.Format)
	}
	return nil
}
