package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"sabalabor/internal/platform/logging"
)

func TestNewRespectsLevelAndFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", "json")
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("expected json warn record, got %s", out)
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	t.Parallel()
	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
}
