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
	"strings"

	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// Marker comments guarding the managed rc file block. Everything between
// them belongs to the CLI and may be rewritten; everything outside is the
// user's and is never touched.
const (
	blockStart = "# >>> cli completion >>>"
	blockEnd   = "# <<< cli completion <<<"
)

// upsertBlock writes the marker-guarded block containing body into the rc
// file, replacing an existing block in place. The rc file is created when
// missing. Repeated calls with the same body leave the file unchanged.
func upsertBlock(rcPath, body string) error {
	data, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return scafferrors.Wrapf(err, "reading %s", rcPath)
	}

	block := blockStart + "\n" + body + "\n" + blockEnd + "\n"
	content := string(data)

	before, after, found := splitBlock(content)
	if found {
		content = before + block + after
	} else {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + block
	}

	if err := os.WriteFile(rcPath, []byte(content), 0644); err != nil {
		return scafferrors.Wrapf(err, "writing %s", rcPath)
	}
	return nil
}

// removeBlock deletes the marker-guarded block from the rc file. A missing
// file or missing block is not an error.
func removeBlock(rcPath string) error {
	data, err := os.ReadFile(rcPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return scafferrors.Wrapf(err, "reading %s", rcPath)
	}

	before, after, found := splitBlock(string(data))
	if !found {
		return nil
	}

	content := strings.TrimSuffix(before, "\n") + after
	if err := os.WriteFile(rcPath, []byte(content), 0644); err != nil {
		return scafferrors.Wrapf(err, "writing %s", rcPath)
	}
	return nil
}

// splitBlock splits content around the managed block. When no complete block
// exists, found is false and the content is returned unsplit.
func splitBlock(content string) (before, after string, found bool) {
	start := strings.Index(content, blockStart)
	if start < 0 {
		return content, "", false
	}
	endMark := strings.Index(content[start:], blockEnd)
	if endMark < 0 {
		return content, "", false
	}
	end := start + endMark + len(blockEnd)
	// Swallow the trailing newline of the block itself.
	if end < len(content) && content[end] == '\n' {
		end++
	}
	return content[:start], content[end:], true
}
