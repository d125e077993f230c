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

// NewFormatCommand creates the dev format command.
func NewFormatCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format code",
		Long: `Run the configured formatter (tools.format) on the project.

Examples:
  # Format code in place
  cli dev format

  # Report formatting issues without rewriting files
  cli dev format --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			argv := e.cfg.Tools.Format
			if check {
				argv = withoutWrite(argv)
				cmd.Println("Checking code formatting...")
			} else {
				cmd.Println("Formatting code...")
			}

			if err := e.runOnce(cmd.Context(), "formatting failed", argv); err != nil {
				return err
			}

			if check {
				cmd.Println(shared.RenderOK("formatting OK"))
			} else {
				cmd.Println(shared.RenderOK("code formatted"))
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&check, "check", false, "Report issues without rewriting files")

	return cmd
}
