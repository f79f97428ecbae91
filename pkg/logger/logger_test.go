package logger

import (
	"path/filepath"
	"testing"

	"comedor/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_StdoutConsole(t *testing.T) {
	original := log
	defer func() { log = original }()

	cfg := &config.LogConfig{Level: "debug", Format: "console", Output: "stdout"}
	if err := Init(cfg, "development"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Get() == nil {
		t.Fatal("expected a logger after Init")
	}

	Debug("debug entry")
	Info("info entry")
	if err := Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
}

func TestInit_FileOutputCreatesDirectory(t *testing.T) {
	original := log
	defer func() { log = original }()

	dir := t.TempDir()
	cfg := &config.LogConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: filepath.Join(dir, "nested", "app.log"),
	}
	if err := Init(cfg, "production"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("written to file")
	if err := Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
}

func TestHelpers_NilSafeBeforeInit(t *testing.T) {
	original := log
	log = nil
	defer func() { log = original }()

	// None of these may panic without an initialized logger.
	Debug("dropped")
	Info("dropped")
	Warn("dropped")
	Error("dropped")

	if With(zap.String("k", "v")) == nil {
		t.Fatal("With must return a usable logger")
	}
	if WithRequestID("abc") == nil {
		t.Fatal("WithRequestID must return a usable logger")
	}
	if err := Sync(); err != nil {
		t.Fatalf("Sync on nil logger: %v", err)
	}
}

func TestWithRequestID_AddsField(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)

	WithRequestID("req-123").Info("tagged")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-123" {
		t.Fatalf("expected request_id req-123, got %v", got)
	}
}

func TestUpdateLevel(t *testing.T) {
	original := log
	defer func() { log = original }()

	cfg := &config.LogConfig{Level: "error", Format: "console", Output: "stdout"}
	if err := Init(cfg, "development"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if atomLevel.Level() != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %v", atomLevel.Level())
	}
	UpdateLevel("debug")
	if atomLevel.Level() != zapcore.DebugLevel {
		t.Fatalf("expected debug level after update, got %v", atomLevel.Level())
	}
}
