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
	"crypto/sha256"
	"log/slog"
	"os"
	"path/filepath"

	comp "github.com/tombee/scaffold/internal/completion"
	"github.com/tombee/scaffold/internal/log"
	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// Installer writes completion scripts to the completions directory and keeps
// the shell rc files pointing at them.
type Installer struct {
	dir    string // completions directory
	home   string // directory holding .bashrc / .zshrc
	logger *slog.Logger
}

// NewInstaller creates an Installer. A nil logger falls back to slog.Default.
func NewInstaller(dir, home string, logger *slog.Logger) *Installer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Installer{
		dir:    dir,
		home:   home,
		logger: log.WithComponent(logger, "completion"),
	}
}

// ScriptPath returns where the script for prog and sh is installed. Bash
// scripts are named <prog>.bash; zsh scripts use the _<prog> convention.
func (i *Installer) ScriptPath(prog string, sh comp.Shell) string {
	if sh == comp.Zsh {
		return filepath.Join(i.dir, "_"+prog)
	}
	return filepath.Join(i.dir, prog+".bash")
}

func (i *Installer) rcPath(sh comp.Shell) string {
	if sh == comp.Zsh {
		return filepath.Join(i.home, ".zshrc")
	}
	return filepath.Join(i.home, ".bashrc")
}

// render generates and syntax-checks the script for the tree. Nothing is
// written to disk when the generated text does not parse.
func (i *Installer) render(root *comp.Node, sh comp.Shell) (*comp.Script, error) {
	script, err := comp.Generate(root, sh)
	if err != nil {
		return nil, err
	}
	if err := comp.Check(script); err != nil {
		return nil, scafferrors.Wrap(err, "generated script failed syntax check")
	}
	return script, nil
}

// Install renders the script, writes it wholesale and splices the source
// block into the shell's rc file. Returns the installed script path.
func (i *Installer) Install(root *comp.Node, sh comp.Shell) (string, error) {
	script, err := i.render(root, sh)
	if err != nil {
		return "", err
	}

	path := i.ScriptPath(script.Program, sh)
	if err := os.WriteFile(path, []byte(script.Text), 0644); err != nil {
		return "", scafferrors.Wrapf(err, "writing %s", path)
	}

	if err := upsertBlock(i.rcPath(sh), sourceLine(path)); err != nil {
		return "", err
	}

	i.logger.Info("completion installed",
		log.String(log.ShellKey, string(sh)),
		log.String(log.PathKey, path))
	return path, nil
}

// Sync rewrites the installed script only when the freshly generated text
// differs from what is on disk. Returns true when the file was rewritten. A
// missing script counts as changed and is written.
func (i *Installer) Sync(root *comp.Node, sh comp.Shell) (bool, error) {
	script, err := i.render(root, sh)
	if err != nil {
		return false, err
	}

	path := i.ScriptPath(script.Program, sh)
	existing, err := os.ReadFile(path)
	if err == nil && sha256.Sum256(existing) == sha256.Sum256([]byte(script.Text)) {
		i.logger.Debug("completion up to date",
			log.String(log.ShellKey, string(sh)),
			log.String(log.PathKey, path))
		return false, nil
	}

	if err := os.WriteFile(path, []byte(script.Text), 0644); err != nil {
		return false, scafferrors.Wrapf(err, "writing %s", path)
	}
	i.logger.Info("completion regenerated",
		log.String(log.ShellKey, string(sh)),
		log.String(log.PathKey, path))
	return true, nil
}

// Uninstall removes the installed script and the rc file block. Neither
// needs to exist.
func (i *Installer) Uninstall(prog string, sh comp.Shell) error {
	path := i.ScriptPath(prog, sh)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return scafferrors.Wrapf(err, "removing %s", path)
	}
	if err := removeBlock(i.rcPath(sh)); err != nil {
		return err
	}
	i.logger.Info("completion uninstalled",
		log.String(log.ShellKey, string(sh)),
		log.String(log.PathKey, path))
	return nil
}

func sourceLine(path string) string {
	return `[ -f "` + path + `" ] && source "` + path + `"`
}
