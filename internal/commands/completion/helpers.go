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
	"os"

	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/shared"
	comp "github.com/tombee/scaffold/internal/completion"
	"github.com/tombee/scaffold/internal/config"
	"github.com/tombee/scaffold/internal/log"
	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// IntrospectRoot snapshots the live command tree this binary was invoked
// through.
func IntrospectRoot(cmd *cobra.Command) (*comp.Node, error) {
	root := cmd.Root()
	normalizeHelp(root)
	return comp.Introspect(root)
}

// normalizeHelp registers the default help flag on every command up front.
// Cobra only adds it to the executed command, which would make the generated
// script depend on which subcommand produced it and defeat content-based
// sync.
func normalizeHelp(c *cobra.Command) {
	c.InitDefaultHelpFlag()
	for _, sub := range c.Commands() {
		normalizeHelp(sub)
	}
}

// newInstaller builds an Installer against the real completions directory
// and home.
func newInstaller() (*Installer, error) {
	dir, err := config.CompletionsDir()
	if err != nil {
		return nil, scafferrors.Wrap(err, "resolving completions directory")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, scafferrors.Wrap(err, "resolving home directory")
	}

	logCfg := log.FromEnv()
	if shared.GetDebug() {
		logCfg.Level = "debug"
	}
	return NewInstaller(dir, home, log.New(logCfg)), nil
}

// rememberShell records sh in the config so sync knows what to regenerate.
func rememberShell(sh comp.Shell) error {
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		return err
	}
	for _, s := range cfg.Completion.Shells {
		if s == string(sh) {
			return nil
		}
	}
	cfg.Completion.Shells = append(cfg.Completion.Shells, string(sh))
	return cfg.Save(shared.GetConfigPath())
}

// forgetShells clears the recorded shells after uninstall.
func forgetShells() error {
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		return err
	}
	if len(cfg.Completion.Shells) == 0 {
		return nil
	}
	cfg.Completion.Shells = nil
	return cfg.Save(shared.GetConfigPath())
}
