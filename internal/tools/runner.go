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

// Package tools runs the external development tools the dev commands wrap.
// Execution goes through an allowlist so a tampered config file cannot turn
// the CLI into a generic command runner.
package tools

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/tombee/scaffold/internal/log"
	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// defaultAllowed lists tool binaries that may be executed out of the box.
var defaultAllowed = []string{
	"go", "gofmt", "gofumpt", "goimports",
	"golangci-lint", "staticcheck",
	"pre-commit", "git",
}

// Runner executes external tools with output streamed through.
type Runner struct {
	logger  *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
	dir     string
	allowed map[string]bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput redirects the tool's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithDir sets the working directory for executed tools.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithAllowed extends the tool allowlist.
func WithAllowed(names ...string) Option {
	return func(r *Runner) {
		for _, n := range names {
			r.allowed[n] = true
		}
	}
}

// New creates a Runner. A nil logger falls back to slog.Default.
func New(logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		logger:  log.WithComponent(logger, "tools"),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		allowed: make(map[string]bool, len(defaultAllowed)),
	}
	for _, n := range defaultAllowed {
		r.allowed[n] = true
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes argv and waits for it. A non-zero exit or a spawn failure is
// returned as a ToolError; ExitCode -1 means the tool never started.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return &scafferrors.ToolError{Tool: "", ExitCode: -1, Message: "empty command"}
	}
	name := argv[0]
	if !r.allowed[name] {
		return &scafferrors.ToolError{
			Tool:     name,
			ExitCode: -1,
			Message:  "not in the allowed tool list",
		}
	}

	cmd := exec.CommandContext(ctx, name, argv[1:]...)
	cmd.Dir = r.dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = os.Stdin

	r.logger.Debug("running tool", log.String(log.ToolKey, name))
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("tool failed",
				log.String(log.ToolKey, name),
				log.Int("exit_code", exitErr.ExitCode()),
				log.Duration(elapsed))
			return &scafferrors.ToolError{
				Tool:     name,
				ExitCode: exitErr.ExitCode(),
				Message:  "exited with errors",
				Cause:    err,
			}
		}
		return &scafferrors.ToolError{Tool: name, ExitCode: -1, Message: "failed to start", Cause: err}
	}

	r.logger.Debug("tool finished",
		log.String(log.ToolKey, name),
		log.Duration(elapsed))
	return nil
}

// Check pairs a display name with the argv it runs, for dev all style
// sequences.
type Check struct {
	Name string
	Argv []string
}

// RunAll executes every check in order, continuing past failures, and
// returns the names of the ones that failed.
func (r *Runner) RunAll(ctx context.Context, checks []Check) []string {
	var failed []string
	for _, c := range checks {
		if err := r.Run(ctx, c.Argv); err != nil {
			failed = append(failed, c.Name)
		}
	}
	return failed
}
