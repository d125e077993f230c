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
)

// NewCommand creates the completion command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Manage shell completion",
		Long: `Generate, install and maintain shell completion scripts.

Scripts are generated from the live command tree, so they always reflect the
commands and flags this binary actually has. Supported shells: bash, zsh.

Installed scripts live under the completions directory in the config dir, and
a marker-guarded block in ~/.bashrc or ~/.zshrc sources them. The block is
idempotent: reinstalling rewrites it in place and never duplicates it.

Examples:
  # Print the bash completion script
  cli dev completion generate bash

  # Install completion for the current shell
  cli dev completion install

  # Regenerate installed scripts after an upgrade
  cli dev completion sync

  # Remove installed scripts and rc file blocks
  cli dev completion uninstall`,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewInstallCommand())
	cmd.AddCommand(NewSyncCommand())
	cmd.AddCommand(NewUninstallCommand())

	cmd.Flags().SortFlags = false

	return cmd
}
