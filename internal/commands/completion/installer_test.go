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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	comp "github.com/tombee/scaffold/internal/completion"
)

func testTree() *comp.Node {
	return &comp.Node{
		Name:    "cli",
		Options: []string{"--debug", "-v", "--verbose"},
		Children: []*comp.Node{
			{Name: "proj", Options: []string{"-s", "--stats"}},
			{Name: "dev", Children: []*comp.Node{
				{Name: "format", Options: []string{"--check"}},
			}},
		},
	}
}

func newTestInstaller(t *testing.T) (*Installer, string, string) {
	t.Helper()
	dir := t.TempDir()
	home := t.TempDir()
	return NewInstaller(dir, home, nil), dir, home
}

func TestInstallWritesScriptAndRcBlock(t *testing.T) {
	inst, dir, home := newTestInstaller(t)

	path, err := inst.Install(testTree(), comp.Bash)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cli.bash"), path)

	script, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(script), "complete -F _cli_complete cli")

	rc, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Contains(t, string(rc), blockStart)
	assert.Contains(t, string(rc), path)
}

func TestInstallZshUsesUnderscoreName(t *testing.T) {
	inst, dir, home := newTestInstaller(t)

	path, err := inst.Install(testTree(), comp.Zsh)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "_cli"), path)

	script, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(script), "bashcompinit")

	if _, err := os.Stat(filepath.Join(home, ".zshrc")); err != nil {
		t.Errorf("expected .zshrc to be created: %v", err)
	}
}

func TestSyncSkipsUnchangedScript(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	tree := testTree()

	_, err := inst.Install(tree, comp.Bash)
	require.NoError(t, err)

	changed, err := inst.Sync(tree, comp.Bash)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged tree must not rewrite the script")
}

func TestSyncRewritesChangedScript(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	tree := testTree()

	_, err := inst.Install(tree, comp.Bash)
	require.NoError(t, err)

	tree.Children = append(tree.Children, &comp.Node{Name: "release"})
	changed, err := inst.Sync(tree, comp.Bash)
	require.NoError(t, err)
	assert.True(t, changed)

	script, err := os.ReadFile(inst.ScriptPath("cli", comp.Bash))
	require.NoError(t, err)
	assert.Contains(t, string(script), "release")
}

func TestSyncWritesMissingScript(t *testing.T) {
	inst, _, _ := newTestInstaller(t)

	changed, err := inst.Sync(testTree(), comp.Bash)
	require.NoError(t, err)
	assert.True(t, changed, "a missing script counts as changed")
}

func TestUninstallRemovesScriptAndBlock(t *testing.T) {
	inst, _, home := newTestInstaller(t)

	path, err := inst.Install(testTree(), comp.Bash)
	require.NoError(t, err)

	require.NoError(t, inst.Uninstall("cli", comp.Bash))

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected script to be removed, stat err: %v", err)
	}
	rc, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.NotContains(t, string(rc), blockStart)
}

func TestUninstallNothingInstalled(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	assert.NoError(t, inst.Uninstall("cli", comp.Bash))
}

func TestInstallRejectsInvalidTree(t *testing.T) {
	inst, _, _ := newTestInstaller(t)

	bad := &comp.Node{Name: "cli", Children: []*comp.Node{{Name: ""}}}
	_, err := inst.Install(bad, comp.Bash)
	assert.Error(t, err)
}
