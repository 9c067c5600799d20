package vastapi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vastai/go-vastapi/internal/logging"
)

// Config is the file form of Params.
type Config struct {
	// Library overrides LibraryName.
	Library string `yaml:"library"`
	// Variant is "device" or "nodev".
	Variant string `yaml:"variant"`
	// LogLevel is one of disabled, error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if _, err := cfg.TableVariant(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TableVariant parses Variant; empty means VariantDevice.
func (c *Config) TableVariant() (Variant, error) {
	return ParseVariant(c.Variant)
}

// Params builds loader parameters from c.
func (c *Config) Params() (Params, error) {
	p, err := NewParams()
	if err != nil {
		return Params{}, err
	}
	if c.Library != "" {
		p.LibraryName = c.Library
	}
	if c.LogLevel != "" {
		f, err := logging.NewLoggerFactory(c.LogLevel)
		if err != nil {
			return Params{}, err
		}
		p.LoggerFactory = f
	}
	return p, nil
}
