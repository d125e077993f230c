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

	comp "github.com/tombee/scaffold/internal/completion"
)

// DetectShell guesses the user's shell from the environment. The version
// variables win over $SHELL because they describe the shell actually running
// the CLI, not the login default.
func DetectShell() comp.Shell {
	if os.Getenv("ZSH_VERSION") != "" {
		return comp.Zsh
	}
	if os.Getenv("BASH_VERSION") != "" {
		return comp.Bash
	}
	if strings.HasSuffix(os.Getenv("SHELL"), "zsh") {
		return comp.Zsh
	}
	return comp.Bash
}

// shellArg resolves the optional positional shell argument, falling back to
// detection.
func shellArg(args []string) (comp.Shell, error) {
	if len(args) == 0 {
		return DetectShell(), nil
	}
	return comp.ParseShell(args[0])
}
