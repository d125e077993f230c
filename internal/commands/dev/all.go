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
	"strings"

	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
	"github.com/tombee/scaffold/internal/tools"
)

// NewAllCommand creates the dev all command.
func NewAllCommand() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run all checks",
		Long: `Run every configured check in order: format (check mode), lint,
typecheck and tests. Checks keep running past failures so one run reports
everything.

Examples:
  # Run all checks once
  cli dev all

  # Rerun all checks whenever files change
  cli dev all --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			checks := []tools.Check{
				{Name: "format", Argv: withoutWrite(e.cfg.Tools.Format)},
				{Name: "lint", Argv: e.cfg.Tools.Lint},
				{Name: "typecheck", Argv: e.cfg.Tools.Typecheck},
				{Name: "test", Argv: e.cfg.Tools.Test},
			}

			run := func(ctx context.Context) error {
				cmd.Println("Running all checks...")
				failed := e.runner.RunAll(ctx, checks)
				if len(failed) > 0 {
					return &shared.ExitError{
						Code:    shared.ExitToolFailed,
						Message: "checks failed: " + strings.Join(failed, ", "),
					}
				}
				return nil
			}

			if watchMode {
				return e.runWatched(cmd.Context(), cmd, run)
			}

			if err := run(cmd.Context()); err != nil {
				return err
			}
			cmd.Println(shared.RenderOK("all checks passed"))
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Rerun checks when files change")

	return cmd
}
