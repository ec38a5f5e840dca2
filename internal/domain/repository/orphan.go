package repository

import (
	"context"

	"github.com/anporsh/printery/internal/domain/model"
)

// OrphanedSessionRepository records gateway sessions that ended up
// without a persisted order. Best-effort observability, no cleanup.
type OrphanedSessionRepository interface {
	Record(ctx context.Context, session model.OrphanedSession) error
	ListOutstanding(ctx context.Context, limit int) ([]model.OrphanedSession, error)
}
