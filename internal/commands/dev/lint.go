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
	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
)

// NewLintCommand creates the dev lint command.
func NewLintCommand() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint code",
		Long: `Run the configured linter (tools.lint) on the project.

Examples:
  # Lint code
  cli dev lint

  # Lint and auto-fix what the linter can
  cli dev lint --fix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			argv := e.cfg.Tools.Lint
			if fix {
				argv = append(append([]string{}, argv...), "--fix")
				cmd.Println("Linting and fixing code...")
			} else {
				cmd.Println("Linting code...")
			}

			if err := e.runOnce(cmd.Context(), "linting failed", argv); err != nil {
				return err
			}

			cmd.Println(shared.RenderOK("no linting issues found"))
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&fix, "fix", false, "Automatically fix issues where possible")

	return cmd
}
