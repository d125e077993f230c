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
	"strings"

	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
	"github.com/tombee/scaffold/internal/tools"
)

// NewPrecommitCommand creates the dev precommit command.
func NewPrecommitCommand() *cobra.Command {
	var fix bool
	var ci bool

	cmd := &cobra.Command{
		Use:   "precommit",
		Short: "Run pre-commit checks",
		Long: `Run the same checks the pre-commit hooks run: format, lint and
typecheck. With --ci the test suite runs too, matching what CI checks.

Examples:
  # Run pre-commit checks
  cli dev precommit

  # Auto-fix lint issues while checking
  cli dev precommit --fix

  # Run the full CI set including tests
  cli dev precommit --ci`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			lintArgv := e.cfg.Tools.Lint
			if fix {
				lintArgv = append(append([]string{}, lintArgv...), "--fix")
			}

			// Formatting always runs in write mode so the tree ends up
			// consistent, mirroring what the hooks themselves do.
			checks := []tools.Check{
				{Name: "format", Argv: e.cfg.Tools.Format},
				{Name: "lint", Argv: lintArgv},
				{Name: "typecheck", Argv: e.cfg.Tools.Typecheck},
			}
			if ci {
				checks = append(checks, tools.Check{Name: "test", Argv: e.cfg.Tools.Test})
				cmd.Println("Running CI checks...")
			} else {
				cmd.Println("Running pre-commit checks...")
			}

			failed := e.runner.RunAll(cmd.Context(), checks)
			if len(failed) > 0 {
				return &shared.ExitError{
					Code:    shared.ExitToolFailed,
					Message: "pre-commit checks failed: " + strings.Join(failed, ", "),
				}
			}

			cmd.Println(shared.RenderOK("all pre-commit checks passed"))
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&fix, "fix", false, "Automatically fix issues where possible")
	cmd.Flags().BoolVar(&ci, "ci", false, "Run the full CI set including tests")

	return cmd
}
