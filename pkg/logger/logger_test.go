package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromEnv_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := LevelFromEnv(tc.in); got != tc.want {
			t.Fatalf("LevelFromEnv(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	// ниже порога — записи нет
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record leaked below the configured level: %q", buf.String())
	}

	log.Error("boom", "err", "details")
	out := buf.String()
	if !strings.Contains(out, `"level":"ERROR"`) || !strings.Contains(out, `"msg":"boom"`) {
		t.Fatalf("unexpected JSON record: %q", out)
	}
}
