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

// Package dev provides CLI commands wrapping the configured development
// tools: formatter, linter, type checker, tests and pre-commit checks.
package dev

import (
	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/completion"
)

// NewCommand creates the dev command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development tools",
		Long: `Run development tools against the project.

Each command shells out to the tool configured under tools.* in the config
file. Tools run from the project root with output streamed through.

Examples:
  # Format code
  cli dev format

  # Check formatting without rewriting files
  cli dev format --check

  # Lint, fixing what the linter can
  cli dev lint --fix

  # Run every check, rerunning on file changes
  cli dev all --watch`,
	}

	cmd.AddCommand(NewFormatCommand())
	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewTypecheckCommand())
	cmd.AddCommand(NewTestCommand())
	cmd.AddCommand(NewAllCommand())
	cmd.AddCommand(NewPrecommitCommand())
	cmd.AddCommand(completion.NewCommand())

	return cmd
}
