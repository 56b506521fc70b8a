// Package config loads seoscan configuration from .seoscan/config.yml
// with environment variable overrides.
package config

import "strings"

// Config represents the complete seoscan configuration.
type Config struct {
	Project Project `yaml:"project" mapstructure:"project"`
	Paths   Paths   `yaml:"paths" mapstructure:"paths"`
	Output  Output  `yaml:"output" mapstructure:"output"`
}

// Project names the scanned project for generated tags.
type Project struct {
	Name string `yaml:"name" mapstructure:"name"`
}

// Paths defines which files to scan and which to ignore.
type Paths struct {
	Components []string `yaml:"components" mapstructure:"components"` // glob patterns for component files
	Ignore     []string `yaml:"ignore" mapstructure:"ignore"`         // glob patterns to ignore
}

// Output defines where results are written.
type Output struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`               // metadata output directory
	PatchHTML string `yaml:"patch_html" mapstructure:"patch_html"` // HTML document to splice tags into; empty disables
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Project: Project{
			Name: "project",
		},
		Paths: Paths{
			Components: []string{
				"**/*.jsx",
				"**/*.tsx",
				"**/*.js",
				"**/*.ts",
			},
			Ignore: []string{
				"node_modules/**",
				".git/**",
				"dist/**",
				"build/**",
				"coverage/**",
				"**/*.test.*",
				"**/*.spec.*",
				"**/*.d.ts",
			},
		},
		Output: Output{
			Dir: ".seoscan",
		},
	}
}

// SourceExtensions returns the unique file extensions referenced by
// the component patterns, with leading dot.
func (c *Config) SourceExtensions() []string {
	seen := make(map[string]bool)
	var extensions []string
	for _, pattern := range c.Paths.Components {
		idx := strings.LastIndex(pattern, ".")
		if idx < 0 {
			continue
		}
		ext := pattern[idx:]
		if strings.ContainsAny(ext, "*?[{") || seen[ext] {
			continue
		}
		seen[ext] = true
		extensions = append(extensions, ext)
	}
	return extensions
}
