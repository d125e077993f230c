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
	"strings"
	"testing"
)

func TestRenderOK(t *testing.T) {
	out := RenderOK("formatting OK")
	if !strings.Contains(out, "✓") {
		t.Errorf("expected checkmark in output, got %q", out)
	}
	if !strings.Contains(out, "formatting OK") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestRenderError(t *testing.T) {
	out := RenderError("lint failed")
	if !strings.Contains(out, "✗") {
		t.Errorf("expected cross in output, got %q", out)
	}
	if !strings.Contains(out, "lint failed") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestRenderLabel(t *testing.T) {
	if out := RenderLabel("branch:"); !strings.Contains(out, "branch:") {
		t.Errorf("expected label in output, got %q", out)
	}
}
