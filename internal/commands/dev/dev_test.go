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

package dev

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/scaffold/internal/commands/shared"
)

func init() {
	// The root command constructor disables cobra's alphabetical sorting so
	// subcommands keep declaration order; tests need the same setting.
	cobra.EnableCommandSorting = false
}

func TestDevCommandStructure(t *testing.T) {
	cmd := NewCommand()

	if cmd.Use != "dev" {
		t.Errorf("expected use 'dev', got %q", cmd.Use)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	expected := []string{"format", "lint", "typecheck", "test", "all", "precommit", "completion"}
	require.Equal(t, expected, names)
}

func TestDevSubcommandsKeepFlagDeclarationOrder(t *testing.T) {
	for _, sub := range NewCommand().Commands() {
		if sub.Flags().SortFlags {
			t.Errorf("%s: flags must stay in declaration order", sub.Name())
		}
	}
}

func TestWithoutWrite(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"strips -w", []string{"gofmt", "-l", "-w", "."}, []string{"gofmt", "-l", "."}},
		{"strips --write", []string{"fmt", "--write", "."}, []string{"fmt", "."}},
		{"leaves others alone", []string{"go", "vet", "./..."}, []string{"go", "vet", "./..."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withoutWrite(tt.in))
		})
	}
}

// setupProject creates a throwaway project directory and a config whose
// tools all resolve to a git invocation, the one allowlisted binary a test
// environment reliably has.
func setupProject(t *testing.T, toolYAML string) {
	t.Helper()
	tmp := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmp, ".git"), 0755))
	t.Chdir(tmp)

	cfgPath := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(toolYAML), 0600))
	shared.SetConfigPathForTest(cfgPath)
	t.Cleanup(func() { shared.SetConfigPathForTest("") })
}

func execDev(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "cli", SilenceUsage: true, SilenceErrors: true}
	rootCmd.AddCommand(NewCommand())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"dev"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestTypecheckSuccess(t *testing.T) {
	setupProject(t, "tools:\n  typecheck: [git, --version]\n")

	out, err := execDev(t, "typecheck")
	require.NoError(t, err)
	assert.Contains(t, out, "type checking passed")
}

func TestTypecheckFailureCarriesExitCode(t *testing.T) {
	setupProject(t, "tools:\n  typecheck: [git, frobnicate]\n")

	_, err := execDev(t, "typecheck")
	require.Error(t, err)

	var exitErr *shared.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Greater(t, exitErr.Code, 0)
}

func TestFormatCheckDoesNotRewrite(t *testing.T) {
	setupProject(t, "tools:\n  format: [git, --version]\n")

	out, err := execDev(t, "format", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "Checking code formatting")
	assert.Contains(t, out, "formatting OK")
}

func TestLintDisallowedToolFails(t *testing.T) {
	setupProject(t, "tools:\n  lint: [rm, -rf, /]\n")

	_, err := execDev(t, "lint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the allowed tool list")
}

func TestAllReportsFailedChecks(t *testing.T) {
	setupProject(t, `tools:
  format: [git, --version]
  lint: [git, frobnicate]
  typecheck: [git, --version]
  test: [git, --version]
`)

	_, err := execDev(t, "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checks failed: lint")
}

func TestPrecommitRunsWithoutTestsByDefault(t *testing.T) {
	setupProject(t, `tools:
  format: [git, --version]
  lint: [git, --version]
  typecheck: [git, --version]
  test: [git, frobnicate]
`)

	// test is broken on purpose; without --ci it must not run
	out, err := execDev(t, "precommit")
	require.NoError(t, err)
	assert.Contains(t, out, "all pre-commit checks passed")

	_, err = execDev(t, "precommit", "--ci")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test")
}

func TestInvalidConfigExitCode(t *testing.T) {
	setupProject(t, "tools:\n  typecheck: {bad yaml\n")

	_, err := execDev(t, "typecheck")
	require.Error(t, err)

	var exitErr *shared.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, shared.ExitInvalidConfig, exitErr.Code)
}
