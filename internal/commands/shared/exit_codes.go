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
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/tombee/scaffold/pkg/errors"
)

// Exit codes for the cli binary
const (
	ExitSuccess       = 0
	ExitFailure       = 1
	ExitInvalidConfig = 2
	ExitToolFailed    = 3
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewToolFailedError creates an error for external tool failures, preserving
// the tool's own exit code when it is meaningful.
func NewToolFailedError(msg string, cause error) *ExitError {
	code := ExitToolFailed
	var terr *pkgerrors.ToolError
	if errors.As(cause, &terr) && terr.ExitCode > 0 {
		code = terr.ExitCode
	}
	return &ExitError{
		Code:    code,
		Message: msg,
		Cause:   cause,
	}
}

// NewInvalidConfigError creates an error for configuration problems
func NewInvalidConfigError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInvalidConfig,
		Message: msg,
		Cause:   cause,
	}
}

// HandleExitError checks if an error is an ExitError and exits with the appropriate code
func HandleExitError(err error) {
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		msg := exitErr.Error()
		if len(msg) > 0 {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}

		printUserVisibleSuggestion(err)

		os.Exit(exitErr.Code)
	}

	// Default to generic failure
	fmt.Fprintln(os.Stderr, "Error:", err.Error())

	printUserVisibleSuggestion(err)

	os.Exit(ExitFailure)
}

// printUserVisibleSuggestion checks if an error implements UserVisibleError
// and prints the suggestion if available.
func printUserVisibleSuggestion(err error) {
	// Walk the error chain to find a UserVisibleError
	for err != nil {
		if userErr, ok := err.(pkgerrors.UserVisibleError); ok {
			if userErr.IsUserVisible() {
				suggestion := userErr.Suggestion()
				if suggestion != "" {
					fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", suggestion)
				}
			}
			return
		}

		err = errors.Unwrap(err)
	}
}
