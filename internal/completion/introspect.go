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
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Introspect walks a live cobra command tree and produces its Node snapshot.
// The traversal is purely structural: it never runs command logic and performs
// no I/O. Hidden commands and hidden flags are excluded.
//
// Cobra guarantees an acyclic tree under normal use, but AddCommand does not
// reject re-parenting an ancestor, so the walk keeps a visited set and fails
// with a StructuralError instead of looping.
func Introspect(cmd *cobra.Command) (*Node, error) {
	visited := make(map[*cobra.Command]bool)
	root, err := introspect(cmd, nil, visited)
	if err != nil {
		return nil, err
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return root, nil
}

func introspect(cmd *cobra.Command, path []string, visited map[*cobra.Command]bool) (*Node, error) {
	if visited[cmd] {
		return nil, &StructuralError{Path: path, Reason: "cycle detected at " + cmd.Name()}
	}
	visited[cmd] = true

	node := &Node{
		Name:    cmd.Name(),
		Options: flagStrings(cmd.Flags()),
	}
	path = append(path, node.Name)

	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		child, err := introspect(sub, path, visited)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// flagStrings collects the declared flag strings of one flag set, both forms
// where both exist, without deduplicating synonyms. VisitAll yields primordial
// order when the set has SortFlags disabled, which the command constructors
// do; otherwise the order is lexicographic but still deterministic.
func flagStrings(fs *pflag.FlagSet) []string {
	var opts []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		if f.Shorthand != "" {
			opts = append(opts, "-"+f.Shorthand)
		}
		opts = append(opts, "--"+f.Name)
	})
	return opts
}
