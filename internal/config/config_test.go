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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Project.Name = "Shaypoor"
	cfg.Tools.Test = []string{"go", "test", "-race", "./..."}
	cfg.Completion.Shells = []string{"bash", "zsh"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Shaypoor", loaded.Project.Name)
	assert.Equal(t, []string{"go", "test", "-race", "./..."}, loaded.Tools.Test)
	assert.Equal(t, []string{"bash", "zsh"}, loaded.Completion.Shells)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project:\n  name: Partial\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Partial", cfg.Project.Name)
	// Unset sections fall back to defaults.
	assert.Equal(t, Default().Tools.Format, cfg.Tools.Format)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tools: [not a map"), 0600))

	_, err := Load(path)
	var cerr *scafferrors.ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Tools.Lint = nil
	var cerr *scafferrors.ConfigError
	require.ErrorAs(t, cfg.Validate(), &cerr)
	assert.Equal(t, "tools.lint", cerr.Key)

	cfg = Default()
	cfg.Stats.Ignore = []string{"[bad"}
	require.ErrorAs(t, cfg.Validate(), &cerr)
	assert.Equal(t, "stats.ignore", cerr.Key)
}

func TestConfigDirRespectsXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "cli"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
