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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatText, Output: &buf})

	logger.Info("hello", String(ToolKey, "gofmt"))

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "gofmt") {
		t.Errorf("expected tool field in output, got: %s", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "debug", Format: FormatJSON, Output: &buf})

	logger.Debug("syncing", String(ShellKey, "bash"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["shell"] != "bash" {
		t.Errorf("expected shell field, got: %v", entry)
	}
}

func TestDurationUsesStandardKey(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "debug", Format: FormatJSON, Output: &buf})

	logger.Debug("tool finished", Duration(42))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry[DurationKey] != float64(42) {
		t.Errorf("expected %s=42, got: %v", DurationKey, entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatText, Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn message should pass at warn level")
	}
}

func TestFromEnvDebug(t *testing.T) {
	t.Setenv("CLI_DEBUG", "1")
	t.Setenv("LOG_FORMAT", "json")

	cfg := FromEnv()
	if cfg.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Level)
	}
	if !cfg.AddSource {
		t.Error("expected AddSource with CLI_DEBUG")
	}
	if cfg.Format != FormatJSON {
		t.Errorf("expected json format, got %s", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
