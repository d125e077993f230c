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

package completion

import (
	"github.com/spf13/cobra"

	comp "github.com/tombee/scaffold/internal/completion"
)

// NewGenerateCommand creates the completion generate command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [bash|zsh]",
		Short: "Print a completion script",
		Long: `Generate the completion script for a shell and print it to stdout.

Without an argument the shell is detected from the environment.

Examples:
  # Print the bash completion script
  cli dev completion generate bash

  # Load it into the current session
  source <(cli dev completion generate bash)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shellArg(args)
			if err != nil {
				return err
			}

			root, err := IntrospectRoot(cmd)
			if err != nil {
				return err
			}

			script, err := comp.Generate(root, sh)
			if err != nil {
				return err
			}

			cmd.Print(script.Text)
			return nil
		},
	}

	cmd.Flags().SortFlags = false

	return cmd
}
