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
	"github.com/tombee/scaffold/internal/config"
	"github.com/tombee/scaffold/internal/project"
)

// NewStatsCommand creates the proj stats command.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show project statistics",
		Long: `Show file, directory and line counts for the project.

Hidden entries and paths matching the stats.ignore globs from the config
file are skipped. Lines are counted for the stats.extensions file types.

Examples:
  # Show project statistics
  cli proj stats

  # Machine-readable output
  cli proj stats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(shared.GetConfigPath())
			if err != nil {
				return shared.NewInvalidConfigError("failed to load config", err)
			}

			root, err := project.Root()
			if err != nil {
				return fmt.Errorf("failed to locate project root: %w", err)
			}

			stats, err := project.Collect(root, cfg.Stats)
			if err != nil {
				return fmt.Errorf("failed to walk %s: %w", root, err)
			}

			if shared.GetJSON() {
				types := make([]map[string]interface{}, len(stats.FileTypes))
				for i, tc := range stats.FileTypes {
					types[i] = map[string]interface{}{
						"extension": tc.Extension,
						"count":     tc.Count,
					}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"root":        root,
					"total_files": stats.TotalFiles,
					"total_dirs":  stats.TotalDirs,
					"total_lines": stats.TotalLines,
					"file_types":  types,
				})
			}

			cmd.Printf("%s\n", shared.Header.Render("Project statistics"))
			cmd.Printf("  %s %d\n", shared.RenderLabel("files:      "), stats.TotalFiles)
			cmd.Printf("  %s %d\n", shared.RenderLabel("directories:"), stats.TotalDirs)
			cmd.Printf("  %s %d\n", shared.RenderLabel("lines:      "), stats.TotalLines)

			if len(stats.FileTypes) > 0 {
				cmd.Printf("\n%s\n", shared.Header.Render("File types"))
				for _, tc := range stats.FileTypes {
					cmd.Printf("  %-14s %d\n", tc.Extension, tc.Count)
				}
			}

			return nil
		},
	}

	return cmd
}
