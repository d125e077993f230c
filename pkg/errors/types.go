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

package errors

import "fmt"

// ConfigError represents configuration problems.
// Use this for configuration file errors, missing settings, or invalid values.
type ConfigError struct {
	// Key is the configuration key that has the problem (e.g., "tools.format")
	Key string

	// Reason explains what's wrong with the configuration
	Reason string

	// Cause is the underlying error (e.g., file read error, parse error)
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config: %s", e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// IsUserVisible implements UserVisibleError.
func (e *ConfigError) IsUserVisible() bool { return true }

// UserMessage implements UserVisibleError.
func (e *ConfigError) UserMessage() string { return e.Error() }

// Suggestion implements UserVisibleError.
func (e *ConfigError) Suggestion() string {
	return "run 'cli setup' to regenerate the configuration file"
}

// ToolError represents a failure invoking an external development tool.
type ToolError struct {
	// Tool is the binary that was invoked (e.g., "gofmt", "golangci-lint")
	Tool string

	// ExitCode is the tool's exit status, -1 if it never started
	ExitCode int

	// Message is the human-readable error description
	Message string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("tool %s failed (exit %d): %s", e.Tool, e.ExitCode, e.Message)
	}
	return fmt.Sprintf("tool %s failed: %s", e.Tool, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// IsUserVisible implements UserVisibleError.
func (e *ToolError) IsUserVisible() bool { return true }

// UserMessage implements UserVisibleError.
func (e *ToolError) UserMessage() string { return e.Error() }

// Suggestion implements UserVisibleError.
func (e *ToolError) Suggestion() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("make sure %q is installed and on your PATH", e.Tool)
	}
	return ""
}
