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
	"os"
	"path/filepath"
)

// rootMarkers identify a project root, checked in order.
var rootMarkers = []string{".git", "go.mod", "pyproject.toml", "package.json"}

// FindRoot walks up from start looking for a project root marker. When no
// marker is found the start directory itself is returned, so commands still
// work in unmanaged directories.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for cur := dir; ; {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(cur, marker)); err == nil {
				return cur, nil
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir, nil
		}
		cur = parent
	}
}

// Root finds the project root starting at the current working directory.
func Root() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRoot(cwd)
}
