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
	comp "github.com/tombee/scaffold/internal/completion"
)

// NewUninstallCommand creates the completion uninstall command.
func NewUninstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove installed shell completion",
		Long: `Remove installed completion scripts and the rc file blocks that
source them, for every supported shell.

Examples:
  # Remove all installed completion
  cli dev completion uninstall`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := newInstaller()
			if err != nil {
				return err
			}

			prog := cmd.Root().Name()
			for _, sh := range comp.Shells() {
				if err := inst.Uninstall(prog, sh); err != nil {
					return err
				}
			}

			if err := forgetShells(); err != nil {
				return err
			}

			cmd.Println(shared.RenderOK("completion uninstalled"))
			return nil
		},
	}

	cmd.Flags().SortFlags = false

	return cmd
}
