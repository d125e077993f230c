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

// Package pkg provides the package command group. Like build, the commands
// are declared stubs that parse and echo their options.
package pkg

import (
	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/shared"
)

// NewCommand creates the package command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Packaging commands",
		Long:  `Package the project for distribution. Not yet implemented; options are parsed and echoed.`,
	}

	cmd.AddCommand(newBuildCommand())
	cmd.AddCommand(newPublishCommand())
	cmd.AddCommand(newListCommand())

	return cmd
}

func newBuildCommand() *cobra.Command {
	var format, output, name, version string
	var sign, dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a package",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Package build: not yet implemented")
			cmd.Println(shared.RenderLabel("  format:") + " " + format)
			if output != "" {
				cmd.Println(shared.RenderLabel("  output:") + " " + output)
			}
			if name != "" {
				cmd.Println(shared.RenderLabel("  name:  ") + " " + name)
			}
			if version != "" {
				cmd.Println(shared.RenderLabel("  version:") + " " + version)
			}
			if sign {
				cmd.Println("  sign package: enabled")
			}
			if dryRun {
				cmd.Println("  dry-run mode: enabled")
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&format, "format", "tar", "Package format (tar, zip, deb, rpm)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory for packages")
	cmd.Flags().StringVar(&name, "name", "", "Package name (defaults to project name)")
	cmd.Flags().StringVar(&version, "version", "", "Package version")
	cmd.Flags().BoolVar(&sign, "sign", false, "Sign the package")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be packaged")

	return cmd
}

func newPublishCommand() *cobra.Command {
	var repo string
	var skipExisting bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish packages to a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Package publish: not yet implemented")
			if repo != "" {
				cmd.Println(shared.RenderLabel("  repository:") + " " + repo)
			}
			if skipExisting {
				cmd.Println("  skip existing versions: enabled")
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&repo, "repository", "", "Repository URL to publish to")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip if the version already exists")

	return cmd
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Package list: not yet implemented")
			return nil
		},
	}

	return cmd
}
