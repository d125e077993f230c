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

// Package completion provides the dev completion command group: generating,
// installing, syncing and uninstalling shell completion scripts.
//
// Script generation itself lives in internal/completion; this package is the
// glue around it:
//   - scripts are written wholesale to <config-dir>/completions
//   - rc files get an idempotent, marker-guarded source block
//   - sync rewrites a script only when its content actually changed
//   - generated scripts are syntax-checked before anything touches disk
package completion
