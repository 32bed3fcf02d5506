// Package config loads the run configuration of the register machine and
// builds the simulation engine, the driver and the logger from it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/urm/api"
)

// Config is the run configuration.
type Config struct {
	FreqGHz  float64   `yaml:"freq_ghz"`
	MaxSteps uint64    `yaml:"max_steps"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig selects the log level and an optional JSON log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a 1 GHz machine with a one billion step limit that logs
// at info level to stderr only.
func Default() Config {
	return Config{
		FreqGHz:  1,
		MaxSteps: 1_000_000_000,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML configuration. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML configuration on top of Default and validates it.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the frequency and the log level.
func (c Config) Validate() error {
	if c.FreqGHz <= 0 {
		return fmt.Errorf("freq_ghz must be positive, got %v", c.FreqGHz)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// Freq returns the configured machine frequency.
func (c Config) Freq() sim.Freq {
	return sim.Freq(c.FreqGHz) * sim.GHz
}

// NewEngine creates the serial engine the machine runs on.
func (c Config) NewEngine() sim.Engine {
	return sim.NewSerialEngine()
}

// NewDriver creates a driver, its machine and the engine they share.
func (c Config) NewDriver(name string) api.Driver {
	return api.DriverBuilder{}.
		WithEngine(c.NewEngine()).
		WithFreq(c.Freq()).
		WithMaxSteps(c.MaxSteps).
		Build(name)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var errLevel = errors.New("unknown log level")

// ParseLevel maps trace, debug, info, warn and error to slog levels.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return 0, fmt.Errorf("%w %q", errLevel, s)
}
