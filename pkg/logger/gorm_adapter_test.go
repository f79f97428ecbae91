package logger

import (
	"context"
	"testing"
	"time"

	"comedor/infrastructure/persistence"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormAdapter_LevelsAndTrace(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)

	adapter := NewGormAdapter(gormlogger.Info)

	adapter.Info(context.Background(), "info %s", "message")
	adapter.Warn(context.Background(), "warn message")
	adapter.Error(context.Background(), "error message")
	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM orders", 3
	}, nil)

	if logs.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", logs.Len())
	}
	last := logs.All()[3]
	if last.Message != "sql query executed" {
		t.Fatalf("unexpected trace message %q", last.Message)
	}
	if last.ContextMap()["sql"] != "SELECT * FROM orders" {
		t.Fatalf("trace entry missing sql field")
	}
}

func TestGormAdapter_SilencedBelowLevel(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)

	adapter := NewGormAdapter(gormlogger.Error)
	adapter.Info(context.Background(), "dropped")
	adapter.Warn(context.Background(), "dropped")
	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	if logs.Len() != 0 {
		t.Fatalf("expected no entries, got %d", logs.Len())
	}
}

func TestGormAdapter_RecordNotFoundNotAnError(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)

	adapter := NewGormAdapter(gormlogger.Error)
	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM orders WHERE id = 404", 0
	}, gormlogger.ErrRecordNotFound)

	for _, entry := range logs.All() {
		if entry.Level == zapcore.ErrorLevel {
			t.Fatal("record-not-found must not be logged as an error")
		}
	}
}

func TestGormAdapter_RequestIDFromContext(t *testing.T) {
	original := log
	defer func() { log = original }()

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)

	ctx := persistence.ContextWithRequestID(context.Background(), "req-9")
	adapter := NewGormAdapter(gormlogger.Info)
	adapter.Info(ctx, "with request id")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["request_id"] != "req-9" {
		t.Fatal("expected request_id field from context")
	}
}

func TestGormAdapter_LogMode(t *testing.T) {
	adapter := NewGormAdapter(gormlogger.Warn)
	next := adapter.LogMode(gormlogger.Silent)
	if next == adapter {
		t.Fatal("LogMode must return a new adapter")
	}
}
