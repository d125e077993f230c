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
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"

	"github.com/tombee/scaffold/internal/config"
)

// Stats aggregates the numbers shown by proj stats.
type Stats struct {
	TotalFiles int
	TotalDirs  int
	TotalLines int64
	FileTypes  []TypeCount
}

// TypeCount is a file extension with its file count.
type TypeCount struct {
	Extension string
	Count     int
}

// topTypes is how many extensions proj stats reports.
const topTypes = 10

// Collect walks the project tree and gathers file, directory and line
// counts. Hidden entries and paths matching the configured ignore globs are
// skipped; lines are only counted for the configured extensions. Unreadable
// files are skipped rather than failing the whole walk.
func Collect(root string, cfg config.StatsConfig) (*Stats, error) {
	counted := lo.SliceToMap(cfg.Extensions, func(ext string) (string, bool) {
		return ext, true
	})

	stats := &Stats{}
	byExt := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if strings.HasPrefix(d.Name(), ".") || ignored(rel, cfg.Ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			stats.TotalDirs++
			return nil
		}

		stats.TotalFiles++
		ext := filepath.Ext(d.Name())
		if ext == "" {
			ext = "no extension"
		}
		byExt[ext]++

		if counted[ext] {
			stats.TotalLines += countLines(path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats.FileTypes = rankTypes(byExt)
	return stats, nil
}

func ignored(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		// Match the path itself too so directory patterns like
		// "**/vendor/**" prune the vendor directory, not only its
		// contents.
		trimmed := strings.TrimSuffix(pattern, "/**")
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(trimmed, rel); ok {
			return true
		}
	}
	return false
}

func countLines(path string) int64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	var lines int64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
	}
	return lines
}

// rankTypes orders extensions by descending count, ties broken by name so
// output is stable, and keeps the top entries.
func rankTypes(byExt map[string]int) []TypeCount {
	types := lo.MapToSlice(byExt, func(ext string, count int) TypeCount {
		return TypeCount{Extension: ext, Count: count}
	})
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Extension < types[j].Extension
	})
	if len(types) > topTypes {
		types = types[:topTypes]
	}
	return types
}
