package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"err", slog.LevelError},
		{"warning", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
	}
	for _, c := range cases {
		if got := parseLogLevel(c.input).Level(); got != c.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestBuildLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	buildLogger(&buf, "info", "text").Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected text output, got %q", buf.String())
	}
	buf.Reset()
	buildLogger(&buf, "info", "").Info("hello")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json output: %v (%q)", err, buf.String())
	}
	buf.Reset()
	buildLogger(&buf, "", "json").Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at default level, got %q", buf.String())
	}
}

func TestRootCmd_RunsSessionAndLogsSummary(t *testing.T) {
	in := strings.NewReader("1 Alice 100\n3 Alice 25\n5 Alice\n6\n")
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(in, &out, &errOut)
	cmd.SetArgs([]string{"--log-level", "info", "--log-format", "json"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Alice's account balance: $125\n") {
		t.Fatalf("unexpected stdout:\n%s", out.String())
	}
	if strings.Contains(out.String(), "session complete") {
		t.Fatalf("logs leaked into stdout")
	}

	var summary map[string]any
	for _, line := range strings.Split(strings.TrimSpace(errOut.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		if rec["msg"] == "session complete" {
			summary = rec
		}
	}
	if summary == nil {
		t.Fatalf("no session summary in logs:\n%s", errOut.String())
	}
	if summary["accounts"] != float64(1) {
		t.Fatalf("accounts = %v, want 1", summary["accounts"])
	}
	ops, ok := summary["operations"].(map[string]any)
	if !ok || ops["deposit/ok"] != float64(1) || ops["balance/ok"] != float64(1) {
		t.Fatalf("unexpected operations: %v", summary["operations"])
	}
	if _, ok := summary["session_id"].(string); !ok {
		t.Fatalf("missing session_id: %v", summary)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs([]string{"extra"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error for positional args")
	}
}

func TestRunSession_InterruptEndsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, logs bytes.Buffer
	logger := buildLogger(&logs, "info", "text")
	if err := runSession(ctx, logger, strings.NewReader("1 Alice 5\n6\n"), &out); err != nil {
		t.Fatalf("interrupted session should end cleanly, got %v", err)
	}
	if !strings.Contains(logs.String(), "session interrupted") {
		t.Fatalf("missing interrupt log:\n%s", logs.String())
	}
	var summary string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, `msg="session complete"`) {
			summary = line
		}
	}
	if !strings.Contains(summary, "accounts=0") {
		t.Fatalf("summary should still be logged:\n%s", logs.String())
	}
}
