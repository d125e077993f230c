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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tombee/scaffold/internal/commands/shared"
	"github.com/tombee/scaffold/internal/project"
)

// NewSizeCommand creates the proj size command.
func NewSizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Show repository size",
		Long: `Show the total on-disk size of the project tree.

Examples:
  # Show repository size
  cli proj size`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := project.Root()
			if err != nil {
				return fmt.Errorf("failed to locate project root: %w", err)
			}

			bytes, err := project.Size(root)
			if err != nil {
				return fmt.Errorf("failed to measure %s: %w", root, err)
			}

			if shared.GetJSON() {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"root":  root,
					"bytes": bytes,
					"human": project.HumanSize(bytes),
				})
			}

			cmd.Printf("%s %s\n", shared.RenderLabel("size:"), project.HumanSize(bytes))
			return nil
		},
	}

	return cmd
}
