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

	"github.com/tombee/scaffold/internal/commands/shared"
)

// NewInstallCommand creates the completion install command.
func NewInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [bash|zsh]",
		Short: "Install shell completion",
		Long: `Generate the completion script, write it to the completions directory
and source it from the shell's rc file.

The rc file gets a marker-guarded block; reinstalling replaces the block
rather than appending another. Without an argument the shell is detected
from the environment.

Examples:
  # Install for the current shell
  cli dev completion install

  # Install for zsh explicitly
  cli dev completion install zsh`,
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

			inst, err := newInstaller()
			if err != nil {
				return err
			}

			path, err := inst.Install(root, sh)
			if err != nil {
				return err
			}

			if err := rememberShell(sh); err != nil {
				return err
			}

			cmd.Println(shared.RenderOK("installed " + string(sh) + " completion"))
			cmd.Println(shared.RenderLabel("  script: ") + path)
			cmd.Println(shared.Muted.Render("  restart your shell or source your rc file to activate"))
			return nil
		},
	}

	cmd.Flags().SortFlags = false

	return cmd
}
