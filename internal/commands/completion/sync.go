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
	"github.com/tombee/scaffold/internal/config"
)

// NewSyncCommand creates the completion sync command.
func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate installed completion scripts",
		Long: `Regenerate the completion scripts recorded in the config file.

Each script is rewritten only when the freshly generated text differs from
what is on disk, so an unchanged command tree leaves everything untouched.
Run this after upgrading the CLI.

Examples:
  # Bring installed scripts up to date
  cli dev completion sync`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(shared.GetConfigPath())
			if err != nil {
				return err
			}

			if len(cfg.Completion.Shells) == 0 {
				cmd.Println(shared.Muted.Render("no completion installed; run 'cli dev completion install' first"))
				return nil
			}

			root, err := IntrospectRoot(cmd)
			if err != nil {
				return err
			}

			inst, err := newInstaller()
			if err != nil {
				return err
			}

			for _, name := range cfg.Completion.Shells {
				sh, err := comp.ParseShell(name)
				if err != nil {
					return err
				}
				changed, err := inst.Sync(root, sh)
				if err != nil {
					return err
				}
				if changed {
					cmd.Println(shared.RenderOK(name + ": regenerated"))
				} else {
					cmd.Println(shared.Muted.Render(name + ": up to date"))
				}
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false

	return cmd
}
