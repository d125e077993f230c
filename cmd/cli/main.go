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

package main

import (
	"github.com/tombee/scaffold/internal/cli"
	"github.com/tombee/scaffold/internal/commands/build"
	"github.com/tombee/scaffold/internal/commands/dev"
	"github.com/tombee/scaffold/internal/commands/pkg"
	"github.com/tombee/scaffold/internal/commands/proj"
	"github.com/tombee/scaffold/internal/commands/release"
	"github.com/tombee/scaffold/internal/commands/setup"
	versioncmd "github.com/tombee/scaffold/internal/commands/version"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version information from build-time ldflags
	cli.SetVersion(version, commit, buildDate)

	// Create root command and add subcommands. Declaration order matters:
	// it is the order completion scripts and help output present them in.
	rootCmd := cli.NewRootCommand()

	rootCmd.AddCommand(proj.NewCommand())
	rootCmd.AddCommand(dev.NewCommand())
	rootCmd.AddCommand(build.NewCommand())
	rootCmd.AddCommand(pkg.NewCommand())
	rootCmd.AddCommand(release.NewCommand())
	rootCmd.AddCommand(versioncmd.NewVersionCommand())
	rootCmd.AddCommand(setup.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		cli.HandleExitError(err)
	}
}
