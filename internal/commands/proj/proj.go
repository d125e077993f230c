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

// Package proj provides CLI commands for inspecting the current project.
package proj

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the proj command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proj",
		Short: "Project information",
		Long: `Inspect the current project.

Commands operate on the project root, found by walking up from the current
directory until a marker file (.git, go.mod, pyproject.toml, package.json)
is seen.

Examples:
  # Show git branch, commit count and worktree state
  cli proj info

  # Show the repository size on disk
  cli proj size

  # Show file, directory and line counts
  cli proj stats`,
	}

	cmd.AddCommand(NewInfoCommand())
	cmd.AddCommand(NewSizeCommand())
	cmd.AddCommand(NewStatsCommand())

	return cmd
}
