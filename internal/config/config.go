package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Tool holds configuration for the pkxdump command.
type Tool struct {
	// Generation of the input records: 1, 2, 4..9 or lgpe.
	Generation string `yaml:"generation"`

	// PersonalPath points to a YAML personal table. Empty means stats,
	// gender and level fall back to zero base data.
	PersonalPath string `yaml:"personal_path"`

	// Processing
	Workers   int    `yaml:"workers"`
	Encrypt   bool   `yaml:"encrypt"` // fix: re-encrypt the output
	OutputDir string `yaml:"output_dir"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultTool returns Tool config with sensible defaults.
func DefaultTool() Tool {
	return Tool{
		Generation: "9",
		Workers:    runtime.GOMAXPROCS(0),
		Encrypt:    true,
		OutputDir:  ".",
		LogLevel:   "info",
	}
}

// LoadTool loads tool config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTool(path string) (Tool, error) {
	cfg := DefaultTool()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
