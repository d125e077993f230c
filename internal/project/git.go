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

package project

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// GitInfo is a snapshot of the repository state shown by proj info.
type GitInfo struct {
	Branch      string
	CommitCount int
	Dirty       bool
}

// GitSummary reads branch, commit count and dirty state from the repository
// at dir. Returns an error when dir is not a git repository or git is not
// installed.
func GitSummary(ctx context.Context, dir string) (*GitInfo, error) {
	branch, err := gitOutput(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil, scafferrors.Wrap(err, "not a git repository or git not available")
	}

	countStr, err := gitOutput(ctx, dir, "rev-list", "--count", "HEAD")
	if err != nil {
		return nil, scafferrors.Wrap(err, "counting commits")
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, scafferrors.Wrapf(err, "unexpected rev-list output %q", countStr)
	}

	status, err := gitOutput(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, scafferrors.Wrap(err, "reading worktree status")
	}

	return &GitInfo{
		Branch:      branch,
		CommitCount: count,
		Dirty:       status != "",
	}, nil
}

func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
