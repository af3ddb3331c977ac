package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newConsoleHandler(&buf, slog.LevelInfo, false)
	l := slog.New(h).With("component", "db")

	l.Debug("hidden")
	l.Info("mod loaded", "triggers", 3, "path", "a b", "took", 1500*time.Microsecond)
	l.WithGroup("cache").Warn("miss", "key", "is_adult")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"INF mod loaded", "component=db", "triggers=3", `path="a b"`, "took=2ms"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q does not contain %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "WRN miss") || !strings.Contains(lines[1], "cache.key=is_adult") {
		t.Errorf("group prefix missing: %q", lines[1])
	}
}

func TestFileOutput(t *testing.T) {
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "tiger.log")
	l := slog.New(NewHandler(Options{Level: "debug", Writer: &console, File: file}))
	l.Debug("validation done", "items", 7)

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("file line is not JSON: %v\n%s", err, data)
	}
	if rec["msg"] != "validation done" || rec["items"] != float64(7) {
		t.Errorf("unexpected record %v", rec)
	}
	if !strings.Contains(console.String(), "DBG validation done") {
		t.Errorf("console missing record: %q", console.String())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TIGER_LOG_LEVEL", "debug")
	t.Setenv("TIGER_LOG_FORMAT", "json")
	t.Setenv("TIGER_LOG_SOURCE", "TRUE")
	t.Setenv("TIGER_LOG_FILE", "")
	o := FromEnv()
	if o.Level != "debug" || o.Format != "json" || !o.AddSource || o.File != "" {
		t.Errorf("FromEnv() = %+v", o)
	}

	merged := Options{Level: "error"}.Merge(o)
	if merged.Level != "error" || merged.Format != "json" {
		t.Errorf("Merge = %+v", merged)
	}
}
