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
	"context"

	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
)

// NewTestCommand creates the dev test command.
func NewTestCommand() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite",
		Long: `Run the configured test command (tools.test) on the project.

Examples:
  # Run tests once
  cli dev test

  # Rerun tests whenever files change
  cli dev test --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			run := func(ctx context.Context) error {
				return e.runOnce(ctx, "tests failed", e.cfg.Tools.Test)
			}

			if watchMode {
				return e.runWatched(cmd.Context(), cmd, run)
			}

			cmd.Println("Running tests...")
			if err := run(cmd.Context()); err != nil {
				return err
			}
			cmd.Println(shared.RenderOK("tests passed"))
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Rerun tests when files change")

	return cmd
}
