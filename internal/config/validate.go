package config

import (
	"fmt"
	"strings"
)

// Validate checks a loaded configuration for inconsistencies.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if len(cfg.Paths.Components) == 0 {
		return fmt.Errorf("paths.components must list at least one glob pattern")
	}

	for _, pattern := range cfg.Paths.Components {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("paths.components contains an empty pattern")
		}
	}
	for _, pattern := range cfg.Paths.Ignore {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("paths.ignore contains an empty pattern")
		}
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		return fmt.Errorf("output.dir must not be empty")
	}

	return nil
}
