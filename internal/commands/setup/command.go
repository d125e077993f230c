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

// Package setup provides the interactive bootstrap wizard: it writes the
// config file and installs shell completion.
package setup

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand creates the setup command
func NewCommand() *cobra.Command {
	var yes bool
	var accessible bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactive wizard to configure the CLI",
		Long: `Launch the setup wizard to configure:
  - Project name and description
  - Shell completion (bash, zsh)

The wizard writes the config file and installs completion scripts. With
--yes, or when stdin is not a terminal, defaults are applied without
prompting.

Use --accessible for simple text prompts if the TUI doesn't work in your
terminal. You can also set CLI_ACCESSIBLE=1 to enable accessible mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes || !term.IsTerminal(int(os.Stdin.Fd())) {
				return runNonInteractive(cmd)
			}
			return runWizard(cmd, useAccessibleMode(accessible))
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept defaults without prompting")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Use accessible mode (simple text prompts instead of TUI)")

	return cmd
}

// useAccessibleMode reports whether the wizard should avoid the TUI.
func useAccessibleMode(flagValue bool) bool {
	return flagValue || os.Getenv("CLI_ACCESSIBLE") == "1"
}
