package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/philipparndt/gotrack/pkg/track"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given
const EnvPath = "GOTRACK_CONFIG"

var validate = validator.New()

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus endpoint. An empty address
// disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// File is the on-disk configuration for the command line tools
type File struct {
	Track   track.Config  `yaml:"track"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the configuration used when no file is present
func Default() File {
	return File{
		Track: track.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration at path. An empty path falls back to
// $GOTRACK_CONFIG, and to the defaults when that is unset too.
func Load(path string) (File, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result
func Parse(r io.Reader) (File, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// Validate checks every section of the configuration
func (f File) Validate() error {
	if err := f.Track.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(f.Log); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	if err := validate.Struct(f.Metrics); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}
	return nil
}
