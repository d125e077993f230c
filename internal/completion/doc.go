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

// Package completion derives shell tab-completion from the command tree.
//
// The pipeline has two pure stages plus glue that lives elsewhere:
//
//   - Introspect takes the live cobra tree and snapshots it into a Node
//     value: command name, declared option strings, children, all in
//     declaration order.
//   - Generate compiles a Node tree into a self-contained bash or zsh
//     script. The tree is baked into the script text, so completion works
//     in a shell session without this binary being runnable.
//
// Candidates is the in-process form of the word-classification walk the
// generated scripts perform, used by tests and by anything that wants
// completion answers without a shell. Writing scripts to disk and wiring
// them into shell startup is the job of the dev completion commands in
// internal/commands/completion.
package completion
