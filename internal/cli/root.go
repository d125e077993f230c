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

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/shared"
)

func init() {
	// Completion scripts bake in declaration order; cobra's alphabetical
	// command sorting would reorder the tree underneath them.
	cobra.EnableCommandSorting = false
}

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for the cli binary
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cli",
		Short: "Modular project command-line interface",
		Long: `A modular command-line interface for project scaffolding.

Examples:
  cli proj info               Show project information
  cli proj size               Show repository size
  cli proj stats              Show detailed statistics

  cli dev format              Format code
  cli dev lint                Lint code
  cli dev all                 Run all checks

Run 'cli setup' to install shell completion and write a config file.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes

		// Completion is managed by 'dev completion'; cobra's built-in
		// generator would shadow it with a second root-level command.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	// Get flag pointers from shared package
	debug, verbose, quiet, json, configPath := shared.RegisterFlagPointers()

	// Add global flags
	cmd.PersistentFlags().SortFlags = false
	cmd.PersistentFlags().BoolVar(debug, "debug", false, "Enable debug output")
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.PersistentFlags().BoolVar(json, "json", false, "Output in JSON format")
	cmd.PersistentFlags().StringVar(configPath, "config", "", "Path to config file (default: ~/.config/cli/config.yaml)")

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
