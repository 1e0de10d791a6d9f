package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew_JSONHandlerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.With(String("component", "export")).Warn(context.Background(), "skipping record",
		Int("index", 3),
		Float("epoch", 1975),
		Err(errors.New("unsupported epoch")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "skipping record" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["component"] != "export" || entry["index"] != float64(3) || entry["error"] != "unsupported epoch" {
		t.Fatalf("missing fields in entry: %v", entry)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})
	log.Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	log.Error(context.Background(), "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestWithRunLogger_AssignsStableRunID(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Format: "json", Output: &buf})

	ctx, log := WithRunLogger(context.Background(), base)
	id := RunIDFromContext(ctx)
	if id == "" {
		t.Fatalf("expected run_id on context")
	}

	ctx2, _ := WithRunLogger(ctx, base)
	if got := RunIDFromContext(ctx2); got != id {
		t.Fatalf("run_id changed from %q to %q", id, got)
	}

	log.Info(ctx, "hello")
	if !strings.Contains(buf.String(), id) {
		t.Fatalf("log line does not carry run_id %q: %q", id, buf.String())
	}
	if LoggerFromContext(ctx) == nil {
		t.Fatalf("expected logger on context")
	}
}

func TestLoggerFromContext_DefaultsToNoop(t *testing.T) {
	log := LoggerFromContext(context.Background())
	if _, ok := log.(noopLogger); !ok {
		t.Fatalf("expected noop logger, got %T", log)
	}
}
