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
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Check parses the script text with the bash grammar and reports any syntax
// error. The zsh render is a bashcompinit shim, so the bash grammar covers
// both targets. Run before installing a script and in tests; a failure here
// means a generator bug, not bad input.
func Check(s *Script) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(s.Text), s.Program+".bash"); err != nil {
		return fmt.Errorf("completion: generated script does not parse: %w", err)
	}
	return nil
}
