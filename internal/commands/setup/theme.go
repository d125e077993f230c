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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Color definitions for consistent styling
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Theme defines the visual theme for the setup wizard.
// It's based on the Charm theme but customized with the CLI's color palette.
func Theme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Base = lipgloss.NewStyle()
	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorError)

	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSuccess)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(ColorSuccess).SetString("✓ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().SetString("  ")

	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).Background(ColorPrimary).Padding(0, 1).Bold(true)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	t.Blurred.Base = lipgloss.NewStyle()
	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorMuted)

	return t
}

// NewThemedForm creates a new form with the CLI theme and alt-screen applied.
func NewThemedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(Theme()).
		WithProgramOptions(WithAltScreen())
}

// WithAltScreen returns a tea.ProgramOption for enabling the alternate screen
// buffer, unless the NO_ALT_SCREEN environment variable is set to "1". The
// alt-screen restores the terminal state when the program exits.
func WithAltScreen() tea.ProgramOption {
	if os.Getenv("NO_ALT_SCREEN") == "1" {
		// No-op option
		return tea.WithoutCatchPanics()
	}
	return tea.WithAltScreen()
}
