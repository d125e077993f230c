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
	"fmt"
	"strings"
)

// Node is one command or command group in a CLI tree. It is a plain value
// snapshot, decoupled from whatever framework declared the commands: built
// once by Introspect, consumed by Generate, then discarded.
type Node struct {
	// Name is the command word, unique among siblings.
	Name string

	// Options holds the declared flag strings in declaration order. Short
	// and long forms of the same flag are distinct entries.
	Options []string

	// Children holds subcommands in declaration order. Empty for leaf
	// commands.
	Children []*Node
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// StructuralError reports an invalid command-definition graph: a cycle, a
// missing or malformed name, or duplicate sibling names. It is fatal to the
// generation run and carries the path at which the defect was found.
type StructuralError struct {
	Path   []string
	Reason string
}

func (e *StructuralError) Error() string {
	if len(e.Path) == 0 {
		return "completion: invalid command tree: " + e.Reason
	}
	return fmt.Sprintf("completion: invalid command tree at %q: %s", strings.Join(e.Path, " "), e.Reason)
}

// validName reports whether a command or option string is safe to embed in a
// generated shell script without quoting.
func validName(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\n'\"`$\\;|&<>(){}")
}

// validate checks an already-built tree: every name well formed, sibling
// names unique. Cycles cannot occur in a Node tree built by Introspect,
// which guards against them during traversal.
func (n *Node) validate(path []string) error {
	if !validName(n.Name) {
		return &StructuralError{Path: path, Reason: fmt.Sprintf("invalid command name %q", n.Name)}
	}
	path = append(path, n.Name)
	for _, opt := range n.Options {
		if !validName(opt) {
			return &StructuralError{Path: path, Reason: fmt.Sprintf("invalid option %q", opt)}
		}
	}
	seen := make(map[string]bool, len(n.Children))
	for _, c := range n.Children {
		if seen[c.Name] {
			return &StructuralError{Path: path, Reason: fmt.Sprintf("duplicate subcommand %q", c.Name)}
		}
		seen[c.Name] = true
		if err := c.validate(path); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the tree invariants starting at the root.
func (n *Node) Validate() error {
	return n.validate(nil)
}
