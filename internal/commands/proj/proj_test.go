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

package proj

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
)

func TestProjCommandStructure(t *testing.T) {
	cmd := NewCommand()

	if cmd.Use != "proj" {
		t.Errorf("expected use 'proj', got %q", cmd.Use)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	expected := []string{"info", "size", "stats"}
	if len(names) != len(expected) {
		t.Fatalf("expected subcommands %v, got %v", expected, names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("expected subcommand %d to be %q, got %q", i, name, names[i])
		}
	}
}

// newTestRoot wires the proj group under a root carrying the --json flag,
// mirroring how the real root command registers it.
func newTestRoot() *cobra.Command {
	rootCmd := &cobra.Command{Use: "test", SilenceUsage: true, SilenceErrors: true}
	_, _, _, jsonPtr, _ := shared.RegisterFlagPointers()
	rootCmd.PersistentFlags().BoolVar(jsonPtr, "json", false, "JSON output")
	rootCmd.AddCommand(NewCommand())
	return rootCmd
}

func newTestProject(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmp, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(tmp)
	return tmp
}

func TestSizeJSON(t *testing.T) {
	newTestProject(t)
	shared.SetConfigPathForTest(filepath.Join(t.TempDir(), "missing.yaml"))
	defer shared.SetConfigPathForTest("")

	rootCmd := newTestRoot()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"proj", "size", "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("proj size failed: %v", err)
	}

	var out struct {
		Root  string `json:"root"`
		Bytes int64  `json:"bytes"`
		Human string `json:"human"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", err, buf.String())
	}
	if out.Bytes <= 0 {
		t.Errorf("expected positive size, got %d", out.Bytes)
	}
	if out.Human == "" {
		t.Error("expected a human-readable size")
	}
}

func TestStatsJSON(t *testing.T) {
	newTestProject(t)
	shared.SetConfigPathForTest(filepath.Join(t.TempDir(), "missing.yaml"))
	defer shared.SetConfigPathForTest("")

	rootCmd := newTestRoot()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"proj", "stats", "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("proj stats failed: %v", err)
	}

	var out struct {
		TotalFiles int   `json:"total_files"`
		TotalLines int64 `json:"total_lines"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", err, buf.String())
	}
	if out.TotalFiles != 1 {
		t.Errorf("expected 1 file, got %d", out.TotalFiles)
	}
	if out.TotalLines != 1 {
		t.Errorf("expected 1 line, got %d", out.TotalLines)
	}
}
