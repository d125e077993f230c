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

package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles shared by the command surface. The accent color matches
// the setup wizard theme so interactive and plain output look related.
var (
	// StatusOK styles success indicators (passed checks, completed installs).
	StatusOK = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "35", Dark: "42"})

	// StatusWarn styles warnings, e.g. a dirty worktree in proj info.
	StatusWarn = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "172", Dark: "214"})

	// StatusError styles failure indicators on tool and check output.
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})

	// Muted styles secondary text such as hints and up-to-date notices.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})

	// Header styles section headers in proj output.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
)

const (
	symbolOK    = "✓"
	symbolError = "✗"
)

// RenderOK renders a success message behind a green checkmark.
func RenderOK(msg string) string {
	return StatusOK.Render(symbolOK) + " " + msg
}

// RenderError renders a failure message behind a red cross.
func RenderError(msg string) string {
	return StatusError.Render(symbolError) + " " + msg
}

// RenderLabel renders a dim key label for key: value lines.
func RenderLabel(label string) string {
	return Muted.Render(label)
}
