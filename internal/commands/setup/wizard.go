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

package setup

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	completioncmd "github.com/tombee/scaffold/internal/commands/completion"
	"github.com/tombee/scaffold/internal/commands/shared"
	comp "github.com/tombee/scaffold/internal/completion"
	"github.com/tombee/scaffold/internal/config"
	"github.com/tombee/scaffold/internal/log"
	"github.com/tombee/scaffold/internal/project"
)

// answers collects the wizard's form values.
type answers struct {
	name        string
	description string
	shells      []string
	install     bool
}

func defaultAnswers() *answers {
	a := &answers{
		name:        "MyProject",
		description: "A Go project",
		shells:      []string{string(completioncmd.DetectShell())},
		install:     true,
	}
	if root, err := project.Root(); err == nil {
		a.name = filepath.Base(root)
	}
	return a
}

// runWizard walks the user through configuration with a themed form.
func runWizard(cmd *cobra.Command, accessible bool) error {
	a := defaultAnswers()

	form := NewThemedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&a.name),
			huh.NewInput().
				Title("Description").
				Value(&a.description),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Shells to install completion for").
				Options(
					huh.NewOption("bash", string(comp.Bash)),
					huh.NewOption("zsh", string(comp.Zsh)),
				).
				Value(&a.shells),
			huh.NewConfirm().
				Title("Install shell completion now?").
				Value(&a.install),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return err
	}
	return apply(cmd, a)
}

// runNonInteractive applies the defaults without prompting.
func runNonInteractive(cmd *cobra.Command) error {
	cmd.Println("Running setup with defaults...")
	return apply(cmd, defaultAnswers())
}

// apply writes the config file and installs completion for the chosen
// shells.
func apply(cmd *cobra.Command, a *answers) error {
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		// A broken existing config should not dead-end setup; start over
		// from defaults.
		cfg = config.Default()
	}

	cfg.Project.Name = a.name
	cfg.Project.Description = a.description

	if a.install && len(a.shells) > 0 {
		root, err := completioncmd.IntrospectRoot(cmd)
		if err != nil {
			return err
		}

		dir, err := config.CompletionsDir()
		if err != nil {
			return err
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		inst := completioncmd.NewInstaller(dir, home, log.New(log.FromEnv()))

		for _, name := range a.shells {
			sh, err := comp.ParseShell(name)
			if err != nil {
				return err
			}
			path, err := inst.Install(root, sh)
			if err != nil {
				return err
			}
			cmd.Println(shared.RenderOK("installed " + name + " completion: " + path))
		}
		cfg.Completion.Shells = a.shells
	}

	if err := cfg.Save(shared.GetConfigPath()); err != nil {
		return err
	}

	cmd.Println(shared.RenderOK("configuration written"))
	cmd.Println(shared.Muted.Render("run 'cli dev completion sync' after upgrading to refresh completion"))
	return nil
}
