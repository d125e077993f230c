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

package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "cli" {
		t.Errorf("expected use 'cli', got %q", cmd.Use)
	}

	if !cmd.SilenceUsage {
		t.Error("expected SilenceUsage to be true")
	}
	if !cmd.SilenceErrors {
		t.Error("expected SilenceErrors to be true")
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"debug", "verbose", "quiet", "json", "config"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q to be registered", name)
		}
	}

	if cmd.PersistentFlags().ShorthandLookup("v") == nil {
		t.Error("expected -v shorthand for --verbose")
	}
	if cmd.PersistentFlags().ShorthandLookup("q") == nil {
		t.Error("expected -q shorthand for --quiet")
	}
}

func TestCommandSortingDisabled(t *testing.T) {
	if cobra.EnableCommandSorting {
		t.Error("command sorting must stay disabled so completion scripts see declaration order")
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2025-06-01")
	defer SetVersion("dev", "unknown", "unknown")

	v, c, b := GetVersion()
	if v != "1.2.3" || c != "abc123" || b != "2025-06-01" {
		t.Errorf("unexpected version info: %s %s %s", v, c, b)
	}
}
