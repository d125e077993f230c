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

// Package build provides the build command group. The commands are declared
// stubs: they parse and echo their options but do not build anything yet.
// They exist so the command tree (and its completion) already has the final
// shape.
package build

import (
	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/shared"
)

// NewCommand creates the build command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build commands",
		Long:  `Build the project. Not yet implemented; options are parsed and echoed.`,
	}

	cmd.AddCommand(newAllCommand())
	cmd.AddCommand(newComponentCommand())
	cmd.AddCommand(newCleanCommand())

	return cmd
}

func newAllCommand() *cobra.Command {
	var target, arch string
	var force, debug, release bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Build all targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Build all: not yet implemented")
			if target != "" {
				cmd.Println(shared.RenderLabel("  target:") + " " + target)
			}
			if arch != "" {
				cmd.Println(shared.RenderLabel("  arch:  ") + " " + arch)
			}
			if force {
				cmd.Println("  force rebuild: enabled")
			}
			if debug {
				cmd.Println("  debug build: enabled")
			}
			if release {
				cmd.Println("  release build: enabled")
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&target, "target", "", "Target platform (linux, darwin, windows)")
	cmd.Flags().StringVar(&arch, "arch", "", "Target architecture (amd64, arm64)")
	cmd.Flags().BoolVar(&force, "force", false, "Force rebuild even if up to date")
	cmd.Flags().BoolVar(&debug, "debug-symbols", false, "Build with debug symbols")
	cmd.Flags().BoolVar(&release, "release", false, "Build optimized release version")

	return cmd
}

func newComponentCommand() *cobra.Command {
	var target string
	var force bool

	cmd := &cobra.Command{
		Use:   "component [name]",
		Short: "Build a specific component",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cmd.Printf("Build component %q: not yet implemented\n", args[0])
			} else {
				cmd.Println("Build component: not yet implemented (no component specified)")
			}
			if target != "" {
				cmd.Println(shared.RenderLabel("  target:") + " " + target)
			}
			if force {
				cmd.Println("  force rebuild: enabled")
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&target, "target", "", "Target platform")
	cmd.Flags().BoolVar(&force, "force", false, "Force rebuild")

	return cmd
}

func newCleanCommand() *cobra.Command {
	var cache, deps bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean build artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Clean: not yet implemented")
			if cache {
				cmd.Println("  clean cache: enabled")
			}
			if deps {
				cmd.Println("  clean dependencies: enabled")
			}
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVar(&cache, "cache", false, "Also clean cache directories")
	cmd.Flags().BoolVar(&deps, "deps", false, "Also clean dependencies")

	return cmd
}
