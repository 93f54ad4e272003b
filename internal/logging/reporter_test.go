package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedReporter(opts ...ReporterOption) (*ZapReporter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewReporter(zap.New(core), opts...), logs
}

func TestReporterNonFatal(t *testing.T) {
	t.Parallel()

	reporter, logs := newObservedReporter()
	if err := reporter.Error("could not open file missing.properties", false); err != nil {
		t.Fatalf("expected nil error for non-fatal report, got %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "could not open file missing.properties" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", entries[0].Level)
	}
}

func TestReporterFatal(t *testing.T) {
	t.Parallel()

	reporter, logs := newObservedReporter()
	err := reporter.Error("boom", true)
	if !errors.Is(err, ErrFatal) {
		t.Fatalf("expected ErrFatal, got %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected fatal report to be logged")
	}
}

func TestReporterRateLimit(t *testing.T) {
	t.Parallel()

	reporter, logs := newObservedReporter(WithRateLimit(0.001, 2))
	for i := 0; i < 5; i++ {
		_ = reporter.Error("noisy", false)
	}
	if logs.Len() != 2 {
		t.Fatalf("expected 2 logged reports, got %d", logs.Len())
	}
	if got := reporter.Suppressed(); got != 3 {
		t.Fatalf("expected 3 suppressed reports, got %d", got)
	}

	if err := reporter.Error("still raised", true); !errors.Is(err, ErrFatal) {
		t.Fatalf("expected fatal report to bypass the limiter, got %v", err)
	}
	if logs.Len() != 3 {
		t.Fatalf("expected fatal report to be logged")
	}
}

func TestNopReporter(t *testing.T) {
	t.Parallel()

	reporter := Nop()
	if err := reporter.Error("ignored", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reporter.Error("raised", true); !errors.Is(err, ErrFatal) {
		t.Fatalf("expected ErrFatal, got %v", err)
	}
}
