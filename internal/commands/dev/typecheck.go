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

// NewTypecheckCommand creates the dev typecheck command.
func NewTypecheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typecheck",
		Short: "Type check code",
		Long: `Run the configured type checker (tools.typecheck) on the project.

Examples:
  # Type check code
  cli dev typecheck`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			cmd.Println("Type checking code...")
			if err := e.runOnce(cmd.Context(), "type checking failed", e.cfg.Tools.Typecheck); err != nil {
				return err
			}

			cmd.Println(shared.RenderOK("type checking passed"))
			return nil
		},
	}
	cmd.Flags().SortFlags = false

	return cmd
}
