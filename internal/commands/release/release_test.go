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

package release

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func init() {
	// The root command constructor disables cobra's alphabetical sorting so
	// subcommands keep declaration order; tests need the same setting.
	cobra.EnableCommandSorting = false
}

func TestReleaseCommandStructure(t *testing.T) {
	cmd := NewCommand()

	if cmd.Use != "release" {
		t.Errorf("expected use 'release', got %q", cmd.Use)
	}

	expected := []string{"create", "publish", "list"}
	subs := cmd.Commands()
	if len(subs) != len(expected) {
		t.Fatalf("expected %d subcommands, got %d", len(expected), len(subs))
	}
	for i, name := range expected {
		if subs[i].Name() != name {
			t.Errorf("expected subcommand %d to be %q, got %q", i, name, subs[i].Name())
		}
	}
}

func TestReleaseCreateEchoesOptions(t *testing.T) {
	cmd := NewCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"create", "--version", "1.2.0", "--draft"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("release create failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"not yet implemented", "1.2.0", "draft release: enabled"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}
