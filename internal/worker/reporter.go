package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/anporsh/printery/internal/domain/model"
)

// OrphanSource exposes the subset of application functionality required
// by the reporter.
type OrphanSource interface {
	OutstandingOrphans(ctx context.Context, limit int) ([]model.OrphanedSession, error)
}

// OrphanReporter periodically surfaces checkout sessions that never got
// an order row. It only reports; reconciliation stays a manual step.
type OrphanReporter struct {
	source    OrphanSource
	interval  time.Duration
	batchSize int
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrphanReporter constructs the background reporter.
func NewOrphanReporter(source OrphanSource, interval time.Duration, batchSize int, logger *slog.Logger) *OrphanReporter {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrphanReporter{
		source:    source,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Start launches background reporting. The loop must outlive the
// startup context, which lifecycle hooks cancel once startup finishes,
// so Stop is the only cancellation path.
func (r *OrphanReporter) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the reporting loop to finish.
func (r *OrphanReporter) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *OrphanReporter) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *OrphanReporter) report(ctx context.Context) {
	sessions, err := r.source.OutstandingOrphans(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch orphaned sessions failed", slog.String("error", err.Error()))
		return
	}
	if len(sessions) == 0 {
		return
	}

	r.logger.Warn("orphaned checkout sessions outstanding", slog.Int("count", len(sessions)))
	for _, session := range sessions {
		r.logger.Warn("orphaned checkout session",
			slog.Int64("user_id", session.UserID),
			slog.Int64("amount_total", session.AmountTotal),
			slog.String("session_url", session.SessionURL),
			slog.String("reason", session.Reason),
			slog.Time("created_at", session.CreatedAt),
		)
	}
}
