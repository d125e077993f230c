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

package proj

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
	"github.com/tombee/scaffold/internal/project"
)

// NewInfoCommand creates the proj info command.
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show project information",
		Long: `Show the project root, git branch, commit count and worktree state.

Examples:
  # Show project information
  cli proj info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			root, err := project.Root()
			if err != nil {
				return fmt.Errorf("failed to locate project root: %w", err)
			}

			info, err := project.GitSummary(ctx, root)
			if err != nil {
				return &shared.ExitError{
					Code:    shared.ExitFailure,
					Message: "failed to read git state",
					Cause:   err,
				}
			}

			if shared.GetJSON() {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"root":    root,
					"name":    filepath.Base(root),
					"branch":  info.Branch,
					"commits": info.CommitCount,
					"dirty":   info.Dirty,
				})
			}

			state := shared.StatusOK.Render("clean")
			if info.Dirty {
				state = shared.StatusWarn.Render("dirty")
			}

			cmd.Printf("%s\n", shared.Header.Render(filepath.Base(root)))
			cmd.Printf("  %s %s\n", shared.RenderLabel("root:    "), root)
			cmd.Printf("  %s %s\n", shared.RenderLabel("branch:  "), info.Branch)
			cmd.Printf("  %s %d\n", shared.RenderLabel("commits: "), info.CommitCount)
			cmd.Printf("  %s %s\n", shared.RenderLabel("worktree:"), state)

			return nil
		},
	}

	return cmd
}
