package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Reporting settings
	Timing        bool
	MessagePrefix string
	NoColor       bool

	// Execution settings
	FailFast bool

	// Output settings
	OutputPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Timing     bool
	FailFast   bool
	NameFilter string
	Progress   bool
	OutputPath string
	NoColor    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Timing:        DefaultTiming,
		MessagePrefix: DefaultMessagePrefix,
		FailFast:      DefaultFailFast,
		OutputPath:    DefaultOutputPath,
	}
}

// LoadEnv reads envFile if it exists and applies the BBUNIT_* variables on
// top of the defaults. A missing file is not an error.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var err error
	if c.Timing, err = envBool(EnvTiming, c.Timing); err != nil {
		return err
	}
	if c.FailFast, err = envBool(EnvFailFast, c.FailFast); err != nil {
		return err
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.OutputPath = v
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.NoColor = true
	}
	return nil
}

// Apply stores flags and lets them override the current settings.
// Boolean flags only switch features on.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Timing {
		c.Timing = true
	}
	if flags.FailFast {
		c.FailFast = true
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
}

// GetOutputPath returns the absolute JSON report path, or "" when disabled.
func (c *Config) GetOutputPath() string {
	if c.OutputPath == "" {
		return ""
	}
	if abs, err := filepath.Abs(c.OutputPath); err == nil {
		return abs
	}
	return c.OutputPath
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return b, nil
}
