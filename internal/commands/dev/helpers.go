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
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tombee/scaffold/internal/commands/shared"
	"github.com/tombee/scaffold/internal/config"
	"github.com/tombee/scaffold/internal/log"
	"github.com/tombee/scaffold/internal/project"
	"github.com/tombee/scaffold/internal/tools"
	"github.com/tombee/scaffold/internal/watch"
)

// env bundles what every dev subcommand needs: the loaded config, the
// project root and a runner executing from it.
type env struct {
	cfg    *config.Config
	root   string
	runner *tools.Runner
	logger *slog.Logger
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		return nil, shared.NewInvalidConfigError("failed to load config", err)
	}

	root, err := project.Root()
	if err != nil {
		return nil, err
	}

	logCfg := log.FromEnv()
	if shared.GetDebug() {
		logCfg.Level = "debug"
	}
	logger := log.New(logCfg)

	runner := tools.New(logger,
		tools.WithDir(root),
		tools.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))

	return &env{cfg: cfg, root: root, runner: runner, logger: logger}, nil
}

// runOnce executes argv and maps a failure to the tool-failed exit code.
func (e *env) runOnce(ctx context.Context, message string, argv []string) error {
	if err := e.runner.Run(ctx, argv); err != nil {
		return shared.NewToolFailedError(message, err)
	}
	return nil
}

// runWatched runs fn immediately, then again after every settled burst of
// file changes under the project root. Failures are reported but do not stop
// the watch; only context cancellation does.
func (e *env) runWatched(ctx context.Context, cmd *cobra.Command, fn func(context.Context) error) error {
	report := func() {
		if err := fn(ctx); err != nil {
			cmd.PrintErrln(shared.RenderError(err.Error()))
		} else {
			cmd.Println(shared.RenderOK("passed"))
		}
	}

	report()

	w, err := watch.New(e.root, e.logger)
	if err != nil {
		return err
	}
	err = w.Run(ctx, report)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// withoutWrite strips file-rewriting flags from a formatter argv so check
// mode never modifies the tree.
func withoutWrite(argv []string) []string {
	out := make([]string, 0, len(argv))
	for _, a := range argv {
		if a == "-w" || a == "--write" {
			continue
		}
		out = append(out, a)
	}
	return out
}
