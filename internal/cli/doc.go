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

/*
Package cli provides the root command and shared configuration for the CLI.

This package creates the main Cobra command tree and handles global concerns
like version information, persistent flags, and error handling. Individual
commands are implemented in the internal/commands subpackages.

# Command Tree

The CLI is organized as:

	cli
	├── proj          Project information
	│   ├── info      Git branch, commits, dirty state
	│   ├── size      Repository size
	│   └── stats     File, directory and line counts
	├── dev           Development tools
	│   ├── format    Run the formatter
	│   ├── lint      Run the linter
	│   ├── typecheck Run the type checker
	│   ├── test      Run the test suite
	│   ├── all       Run every check
	│   ├── precommit Run pre-commit checks
	│   └── completion  Shell completion management
	├── build         Build commands (placeholder)
	├── package       Packaging commands (placeholder)
	├── release       Release commands (placeholder)
	├── version       Show version
	└── setup         Interactive bootstrap

Command sorting is disabled globally: the completion generator snapshots the
tree in declaration order, and that order is part of its output contract.
*/
package cli
