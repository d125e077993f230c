// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// Config represents the complete CLI configuration.
type Config struct {
	Project    ProjectConfig    `yaml:"project"`
	Tools      ToolsConfig      `yaml:"tools"`
	Stats      StatsConfig      `yaml:"stats"`
	Completion CompletionConfig `yaml:"completion,omitempty"`
}

// ProjectConfig holds project metadata shown by proj info.
type ProjectConfig struct {
	// Name is the human-readable project name.
	Name string `yaml:"name"`

	// Description is a one-line project description.
	Description string `yaml:"description,omitempty"`
}

// ToolsConfig maps each dev command to the external tool it shells out to.
// Each entry is argv: binary first, arguments after.
type ToolsConfig struct {
	Format    []string `yaml:"format"`
	Lint      []string `yaml:"lint"`
	Typecheck []string `yaml:"typecheck"`
	Test      []string `yaml:"test"`
	Precommit []string `yaml:"precommit"`
}

// StatsConfig controls the proj stats walker.
type StatsConfig struct {
	// Ignore holds doublestar glob patterns for paths to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Extensions lists file extensions whose lines are counted.
	Extensions []string `yaml:"extensions,omitempty"`
}

// CompletionConfig holds completion installation preferences.
type CompletionConfig struct {
	// Shells lists the shells completion was installed for, so sync knows
	// which scripts to regenerate.
	Shells []string `yaml:"shells,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:        "MyProject",
			Description: "A Go project",
		},
		Tools: ToolsConfig{
			Format:    []string{"gofmt", "-l", "-w", "."},
			Lint:      []string{"golangci-lint", "run"},
			Typecheck: []string{"go", "vet", "./..."},
			Test:      []string{"go", "test", "./..."},
			Precommit: []string{"pre-commit", "run", "--all-files"},
		},
		Stats: StatsConfig{
			Ignore: []string{
				"**/.*/**",
				"**/node_modules/**",
				"**/vendor/**",
				"**/dist/**",
				"**/target/**",
			},
			Extensions: []string{
				".go", ".py", ".js", ".ts", ".rs", ".c", ".cpp", ".h",
				".java", ".rb", ".sh", ".md", ".txt", ".yaml", ".yml", ".json",
			},
		},
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned so every command works before setup has run. path ""
// resolves to the XDG config location.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return nil, scafferrors.Wrap(err, "resolving config path")
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, &scafferrors.ConfigError{Reason: "reading config file", Cause: err}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &scafferrors.ConfigError{Reason: "parsing config file", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path (0600, whole-file rewrite). path ""
// resolves to the XDG config location.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return scafferrors.Wrap(err, "resolving config path")
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return scafferrors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return &scafferrors.ConfigError{Reason: "writing config file", Cause: err}
	}
	return nil
}

// Validate checks tool commands and stats globs.
func (c *Config) Validate() error {
	tools := map[string][]string{
		"tools.format":    c.Tools.Format,
		"tools.lint":      c.Tools.Lint,
		"tools.typecheck": c.Tools.Typecheck,
		"tools.test":      c.Tools.Test,
		"tools.precommit": c.Tools.Precommit,
	}
	for key, argv := range tools {
		if len(argv) == 0 {
			return &scafferrors.ConfigError{Key: key, Reason: "empty command"}
		}
	}

	for _, pattern := range c.Stats.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return &scafferrors.ConfigError{
				Key:    "stats.ignore",
				Reason: fmt.Sprintf("invalid glob pattern %q", pattern),
			}
		}
	}
	return nil
}
