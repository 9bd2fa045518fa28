package primer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// A Config controls playback. A missing config file just means
// defaults, and PRIMER_* environment variables win over the file.
type Config struct {
	Pace     string `yaml:"pace"`      // Narration delay per line, e.g. "300ms".
	Color    bool   `yaml:"color"`     // Colored headings.
	Progress bool   `yaml:"progress"`  // Progress bar during run --all.
	LogLevel string `yaml:"log_level"` // zap level: debug, info, warn, error.
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Pace:     "0s",
		Color:    true,
		Progress: true,
		LogLevel: "info",
	}
}

// LoadConfig reads the YAML file at path. A missing file is not an
// error; the defaults come back instead. The environment variables
// PRIMER_PACE, PRIMER_COLOR, PRIMER_PROGRESS and PRIMER_LOG_LEVEL
// override both.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("primer: read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("primer: parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if _, err := cfg.PaceDelay(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PRIMER_PACE"); v != "" {
		c.Pace = v
	}
	if v := os.Getenv("PRIMER_COLOR"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Color = on
		}
	}
	if v := os.Getenv("PRIMER_PROGRESS"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Progress = on
		}
	}
	if v := os.Getenv("PRIMER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// PaceDelay parses the pace setting. An empty pace means zero.
func (c *Config) PaceDelay() (time.Duration, error) {
	if c.Pace == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Pace)
	if err != nil {
		return 0, fmt.Errorf("primer: bad pace %q: %w", c.Pace, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("primer: bad pace %q: negative", c.Pace)
	}
	return d, nil
}
