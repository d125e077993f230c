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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterminism(t *testing.T) {
	for _, sh := range Shells() {
		first, err := Generate(testTree(), sh)
		require.NoError(t, err)
		second, err := Generate(testTree(), sh)
		require.NoError(t, err)
		assert.Equal(t, first.Text, second.Text, "shell %s", sh)
	}
}

func TestGenerateBash(t *testing.T) {
	script, err := Generate(testTree(), Bash)
	require.NoError(t, err)

	assert.Equal(t, "cli", script.Program)
	// The tree is baked in as literal text, declaration order preserved.
	assert.Contains(t, script.Text, "NODE_SUBS='proj dev'")
	assert.Contains(t, script.Text, "NODE_OPTS='-s -i --stats'")
	assert.Contains(t, script.Text, "NODE_OPTS='-f -l -t -a'")
	assert.Contains(t, script.Text, "complete -F _cli_complete cli")
	assert.NotContains(t, script.Text, "bashcompinit")

	require.NoError(t, Check(script))
}

func TestGenerateZsh(t *testing.T) {
	script, err := Generate(testTree(), Zsh)
	require.NoError(t, err)

	assert.Contains(t, script.Text, "autoload -U +X bashcompinit && bashcompinit")
	assert.Contains(t, script.Text, "complete -F _cli_complete cli")

	require.NoError(t, Check(script))
}

func TestGenerateSharedTree(t *testing.T) {
	// Both render targets work off the same tree without re-introspection.
	tree := testTree()
	bash, err := Generate(tree, Bash)
	require.NoError(t, err)
	zsh, err := Generate(tree, Zsh)
	require.NoError(t, err)
	assert.NotEqual(t, bash.Text, zsh.Text)
}

func TestGenerateEmptyTree(t *testing.T) {
	script, err := Generate(&Node{Name: "cli"}, Bash)
	require.NoError(t, err)

	// Still a valid script; it just never proposes anything.
	require.NoError(t, Check(script))
	assert.Contains(t, script.Text, "complete -F _cli_complete cli")
	assert.NotContains(t, script.Text, "NODE_SUBS='")
}

func TestGenerateUnsupportedShell(t *testing.T) {
	_, err := Generate(testTree(), Shell("fish"))
	var uerr *UnsupportedShellError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, Shell("fish"), uerr.Shell)
}

func TestGenerateInvalidTree(t *testing.T) {
	root := &Node{
		Name:     "cli",
		Children: []*Node{{Name: "dup"}, {Name: "dup"}},
	}
	_, err := Generate(root, Bash)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
}

func TestGenerateNestedPaths(t *testing.T) {
	root := &Node{
		Name: "cli",
		Children: []*Node{
			{Name: "dev", Children: []*Node{
				{Name: "completion", Children: []*Node{
					{Name: "sync", Options: []string{"--force"}},
				}},
			}},
		},
	}

	script, err := Generate(root, Bash)
	require.NoError(t, err)
	require.NoError(t, Check(script))

	assert.Contains(t, script.Text, "/dev)")
	assert.Contains(t, script.Text, "/dev/completion)")
	assert.Contains(t, script.Text, "/dev/completion/sync)")
	assert.Contains(t, script.Text, "NODE_OPTS='--force'")
}

func TestFuncNameSanitized(t *testing.T) {
	script, err := Generate(&Node{Name: "my-cli"}, Bash)
	require.NoError(t, err)
	assert.Contains(t, script.Text, "complete -F _my_cli_complete my-cli")
	require.NoError(t, Check(script))
}

func TestParseShell(t *testing.T) {
	sh, err := ParseShell("BASH")
	require.NoError(t, err)
	assert.Equal(t, Bash, sh)

	_, err = ParseShell("powershell")
	var uerr *UnsupportedShellError
	require.ErrorAs(t, err, &uerr)
}
