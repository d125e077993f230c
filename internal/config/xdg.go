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
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for the CLI (~/.config/cli).
// Respects the XDG_CONFIG_HOME environment variable. The directory is
// created if it does not exist.
func ConfigDir() (string, error) {
	var base string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		base = xdg
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		// macOS also uses ~/.config here, following XDG rather than
		// ~/Library/Application Support.
		base = filepath.Join(home, ".config")
	}

	configDir := filepath.Join(base, "cli")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}

	return configDir, nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// CompletionsDir returns the directory completion scripts are installed to.
// The directory is created if it does not exist.
func CompletionsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	compDir := filepath.Join(dir, "completions")
	if err := os.MkdirAll(compDir, 0755); err != nil {
		return "", err
	}
	return compDir, nil
}
