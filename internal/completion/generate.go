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

// Shell identifies a supported completion render target.
type Shell string

const (
	// Bash renders a native bash completion script.
	Bash Shell = "bash"
	// Zsh renders the bash script wrapped in a bashcompinit shim.
	Zsh Shell = "zsh"
)

// Shells lists the supported render targets in a stable order.
func Shells() []Shell {
	return []Shell{Bash, Zsh}
}

// ParseShell validates a user-supplied shell name.
func ParseShell(s string) (Shell, error) {
	switch Shell(strings.ToLower(s)) {
	case Bash:
		return Bash, nil
	case Zsh:
		return Zsh, nil
	}
	return "", &UnsupportedShellError{Shell: Shell(s)}
}

// UnsupportedShellError is returned when Generate is asked for a shell family
// it does not implement. It is fatal to that render call only; the caller may
// retry with a different shell.
type UnsupportedShellError struct {
	Shell Shell
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("completion: unsupported shell %q (supported: bash, zsh)", string(e.Shell))
}

// Script is the generated completion artifact: the script text plus the root
// program name it completes for. The tree is baked into the text at
// generation time, so completion works without the generating binary.
type Script struct {
	Program string
	Text    string
}

// Generate renders the completion script for the given tree and shell. The
// output is deterministic: an unchanged tree produces byte-identical text, so
// regeneration never perturbs installed state spuriously. An empty tree still
// yields a valid script that proposes nothing.
func Generate(root *Node, sh Shell) (*Script, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	switch sh {
	case Bash, Zsh:
	default:
		return nil, &UnsupportedShellError{Shell: sh}
	}

	var b strings.Builder
	writeHeader(&b, root.Name, sh)
	writeNodeFunc(&b, root)
	writeWalker(&b, root.Name)
	writeRegistration(&b, root.Name, sh)

	return &Script{Program: root.Name, Text: b.String()}, nil
}

// funcName sanitizes a program name into a shell function identifier.
func funcName(prog string) string {
	var b strings.Builder
	for _, r := range prog {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func writeHeader(b *strings.Builder, prog string, sh Shell) {
	fmt.Fprintf(b, "# Code generated by %s; DO NOT EDIT.\n", prog)
	switch sh {
	case Zsh:
		fmt.Fprintf(b, "# zsh completion for %s (via bashcompinit)\n\n", prog)
	default:
		fmt.Fprintf(b, "# bash completion for %s\n\n", prog)
	}
}

// writeNodeFunc emits the tree lookup function: given a slash-joined command
// path it sets NODE_SUBS and NODE_OPTS to the subcommand and option words of
// that node. Case arms are emitted in preorder, children in declaration
// order.
func writeNodeFunc(b *strings.Builder, root *Node) {
	fn := funcName(root.Name)
	fmt.Fprintf(b, "__%s_node() {\n", fn)
	b.WriteString("    NODE_SUBS=''\n")
	b.WriteString("    NODE_OPTS=''\n")
	b.WriteString("    case \"$1\" in\n")
	writeNodeCase(b, root, "/")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
}

func writeNodeCase(b *strings.Builder, n *Node, path string) {
	fmt.Fprintf(b, "    %s)\n", path)
	if len(n.Children) > 0 {
		names := make([]string, len(n.Children))
		for i, c := range n.Children {
			names[i] = c.Name
		}
		fmt.Fprintf(b, "        NODE_SUBS='%s'\n", strings.Join(names, " "))
	}
	if len(n.Options) > 0 {
		fmt.Fprintf(b, "        NODE_OPTS='%s'\n", strings.Join(n.Options, " "))
	}
	b.WriteString("        ;;\n")
	for _, c := range n.Children {
		childPath := path + c.Name
		if path != "/" {
			childPath = path + "/" + c.Name
		}
		writeNodeCase(b, c, childPath)
	}
}

// writeWalker emits the completion entry point. It implements the same word
// classification as Candidates: descend while the typed words name
// subcommands, then offer either options or subcommands of the reached node
// depending on whether the current word starts with a dash.
//
// The ZSH_VERSION sniff is runtime behavior of the generated artifact, needed
// because bashcompinit does not ship _get_comp_words_by_ref.
func writeWalker(b *strings.Builder, prog string) {
	fn := funcName(prog)
	fmt.Fprintf(b, `_%[1]s_complete() {
    local cur words cword
    if [[ -n "${ZSH_VERSION-}" ]]; then
        words=("${COMP_WORDS[@]}")
        cword=$COMP_CWORD
        cur="${COMP_WORDS[COMP_CWORD]-}"
    elif type _get_comp_words_by_ref &>/dev/null; then
        _get_comp_words_by_ref -n : cur words cword
    else
        words=("${COMP_WORDS[@]}")
        cword=$COMP_CWORD
        cur="${COMP_WORDS[COMP_CWORD]-}"
    fi

    local NODE_SUBS NODE_OPTS
    local node=/ i w
    for ((i = 1; i < cword; i++)); do
        w="${words[i]}"
        __%[1]s_node "$node"
        case " ${NODE_SUBS} " in
        *" ${w} "*)
            if [[ "$node" == / ]]; then node="/${w}"; else node="${node}/${w}"; fi
            ;;
        *)
            break
            ;;
        esac
    done

    __%[1]s_node "$node"
    COMPREPLY=()
    if [[ "$cur" == -* ]]; then
        if [[ -n "$NODE_OPTS" ]]; then
            COMPREPLY=($(compgen -W "$NODE_OPTS" -- "$cur"))
        fi
    else
        if [[ -n "$NODE_SUBS" ]]; then
            COMPREPLY=($(compgen -W "$NODE_SUBS" -- "$cur"))
        fi
    fi
    return 0
}

`, fn)
}

func writeRegistration(b *strings.Builder, prog string, sh Shell) {
	fn := funcName(prog)
	if sh == Zsh {
		b.WriteString("autoload -U +X bashcompinit && bashcompinit\n")
	}
	fmt.Fprintf(b, "complete -F _%s_complete %s\n", fn, prog)
}
