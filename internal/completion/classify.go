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
	"strings"

	"github.com/samber/lo"
)

// Candidates computes the completion candidate set for a command line. words
// are the full words typed before the cursor, excluding the program name;
// partial is the word being completed (possibly empty).
//
// The walk consumes words left to right: a word matching a child of the
// current node descends into it, the first non-matching word ends the descent
// (remaining words are option or positional arguments). At the cursor, a
// partial starting with a dash proposes the current node's options, anything
// else proposes its child names, both filtered by prefix in declaration
// order.
//
// The generated shell scripts implement this same walk at completion time;
// this function is the in-process reference for it.
func Candidates(root *Node, words []string, partial string) []string {
	node := root
	for _, w := range words {
		child := node.Child(w)
		if child == nil {
			break
		}
		node = child
	}

	source := node.Children
	if strings.HasPrefix(partial, "-") {
		return lo.Filter(node.Options, func(opt string, _ int) bool {
			return strings.HasPrefix(opt, partial)
		})
	}
	names := lo.Map(source, func(c *Node, _ int) string { return c.Name })
	return lo.Filter(names, func(name string, _ int) bool {
		return strings.HasPrefix(name, partial)
	})
}
