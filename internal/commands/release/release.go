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

// Package release provides the release command group. The commands are
// declared stubs that parse and echo their options.
package release

import (
	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/shared"
)

// NewCommand creates the release command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release commands",
		Long:  `Create and publish releases. Not yet implemented; options are parsed and echoed.`,
	}

	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newPublishCommand())
	cmd.AddCommand(newListCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	var version, tag, notes string
	var draft, prerelease, dryRun bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Release create: not yet implemented")
			if version != "" {
				cmd.Println(shared.RenderLabel("  version:") + " " + version)
			}
			if tag != "" {
				cmd.Println(shared.RenderLabel("  git tag:") + " " + tag)
			}
			if notes != "" {
				cmd.Println(shared.RenderLabel("  notes:  ") + " " + notes)
			}
			if draft {
				cmd.Println("  draft release: enabled")
			}
			if prerelease {
				cmd.Println("  pre-release: enabled")
			}
			if dryRun {
				cmd.Println("  dry-run mode: enabled")
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&version, "version", "", "Version number (e.g. 1.0.0)")
	cmd.Flags().StringVar(&tag, "tag", "", "Git tag to create for this release")
	cmd.Flags().StringVar(&notes, "notes", "", "Release notes or changelog")
	cmd.Flags().BoolVar(&draft, "draft", false, "Create as draft release")
	cmd.Flags().BoolVar(&prerelease, "prerelease", false, "Mark as pre-release")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

func newPublishCommand() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Release publish: not yet implemented")
			if version != "" {
				cmd.Println(shared.RenderLabel("  version:") + " " + version)
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&version, "version", "", "Version to publish")

	return cmd
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List releases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Release list: not yet implemented")
			return nil
		},
	}

	return cmd
}
