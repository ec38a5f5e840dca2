package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/anporsh/printery/internal/domain/model"
	testhelpers "github.com/anporsh/printery/internal/test"
)

type capturingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *capturingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *capturingHandler) WithGroup(string) slog.Handler      { return h }

func (h *capturingHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func TestOrphanReporterLogsOutstandingSessions(t *testing.T) {
	source := &testhelpers.ReporterFacadeStub{
		Sessions: []model.OrphanedSession{
			{UserID: 7, AmountTotal: 3000, SessionURL: "https://pay/session/abc", Reason: "duplicate payment link"},
		},
	}
	handler := &capturingHandler{}
	reporter := NewOrphanReporter(source, 10*time.Millisecond, 50, slog.New(handler))

	reporter.Start(context.Background())
	deadline := time.After(time.Second)
	for source.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected reporter to poll the source")
		case <-time.After(5 * time.Millisecond):
		}
	}
	reporter.Stop()

	if handler.count(slog.LevelWarn) == 0 {
		t.Fatal("expected warn log for outstanding session")
	}
}

func TestOrphanReporterSourceError(t *testing.T) {
	source := &testhelpers.ReporterFacadeStub{Err: errors.New("db down")}
	handler := &capturingHandler{}
	reporter := NewOrphanReporter(source, 10*time.Millisecond, 50, slog.New(handler))

	reporter.Start(context.Background())
	deadline := time.After(time.Second)
	for source.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected reporter to poll the source")
		case <-time.After(5 * time.Millisecond):
		}
	}
	reporter.Stop()

	if handler.count(slog.LevelError) == 0 {
		t.Fatal("expected error log when fetch fails")
	}
	if handler.count(slog.LevelWarn) != 0 {
		t.Fatal("no sessions should have been reported")
	}
}

func TestOrphanReporterQuietWhenEmpty(t *testing.T) {
	source := &testhelpers.ReporterFacadeStub{}
	handler := &capturingHandler{}
	reporter := NewOrphanReporter(source, 10*time.Millisecond, 50, slog.New(handler))

	reporter.Start(context.Background())
	deadline := time.After(time.Second)
	for source.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected reporter to poll the source")
		case <-time.After(5 * time.Millisecond):
		}
	}
	reporter.Stop()

	if handler.count(slog.LevelWarn) != 0 {
		t.Fatal("expected no warnings for empty backlog")
	}
}

func TestOrphanReporterSurvivesStartContextCancel(t *testing.T) {
	source := &testhelpers.ReporterFacadeStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reporter := NewOrphanReporter(source, 10*time.Millisecond, 50, logger)

	ctx, cancel := context.WithCancel(context.Background())
	reporter.Start(ctx)
	cancel()

	deadline := time.After(time.Second)
	for source.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected reporter to keep polling after the startup context was cancelled")
		case <-time.After(5 * time.Millisecond):
		}
	}
	reporter.Stop()
}

func TestOrphanReporterStopWithoutStart(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reporter := NewOrphanReporter(&testhelpers.ReporterFacadeStub{}, time.Second, 0, logger)
	reporter.Stop()
}

func TestOrphanReporterBatchFloor(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reporter := NewOrphanReporter(&testhelpers.ReporterFacadeStub{}, time.Second, -5, logger)
	if reporter.batchSize != 1 {
		t.Fatalf("expected batch floor of 1, got %d", reporter.batchSize)
	}
}
