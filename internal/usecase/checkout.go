package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/domain/repository"
)

// PaymentGateway opens hosted checkout sessions for a list of line
// items. Transaction mode and redirect targets are fixed at client
// construction, not per call.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, items []model.LineItem) (*model.CheckoutSession, error)
}

// CheckoutUseCase runs the order creation workflow: it reads the
// user's pending wishes, opens a payment session for them and records
// the resulting order.
type CheckoutUseCase struct {
	wishes  repository.WishRepository
	orders  repository.OrderRepository
	orphans repository.OrphanedSessionRepository
	gateway PaymentGateway
	logger  *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	wishes repository.WishRepository,
	orders repository.OrderRepository,
	orphans repository.OrphanedSessionRepository,
	gateway PaymentGateway,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{wishes: wishes, orders: orders, orphans: orphans, gateway: gateway, logger: logger}
}

// Create builds a pending order for all of the user's wishes. The
// gateway session and the order insert are two independent systems
// with no shared transaction boundary: if the insert fails after the
// session was opened, the session is left orphaned and only recorded
// for visibility. Two successful calls over the same wish list produce
// two orders and two sessions.
func (u *CheckoutUseCase) Create(ctx context.Context, userID int64) (*model.Order, error) {
	wishes, err := u.wishes.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("fetch wishes failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch wishes: %w", err)
	}
	if len(wishes) == 0 {
		return nil, domainErrors.ErrNoWishes
	}

	items := BuildLineItems(wishes)

	session, err := u.gateway.CreateCheckoutSession(ctx, items)
	if err != nil {
		u.logger.Error("checkout session failed",
			slog.Int64("user_id", userID),
			slog.Int("line_items", len(items)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	wishIDs := make([]int64, len(wishes))
	for i, w := range wishes {
		wishIDs[i] = w.ID
	}

	order, err := u.orders.Create(ctx, model.Order{
		UserID:      userID,
		Paid:        session.AmountTotal,
		Status:      model.OrderStatusPending,
		PaymentLink: session.URL,
		WishIDs:     wishIDs,
	})
	if err != nil {
		u.recordOrphan(ctx, userID, session, err)
		return nil, err
	}

	return order, nil
}

// recordOrphan makes the session-without-order failure mode visible. A
// distinct log signal always fires; the persisted record is best
// effort.
func (u *CheckoutUseCase) recordOrphan(ctx context.Context, userID int64, session *model.CheckoutSession, cause error) {
	u.logger.Error("payment session orphaned: order persist failed",
		slog.Int64("user_id", userID),
		slog.Int64("amount_total", session.AmountTotal),
		slog.String("session_url", session.URL),
		slog.String("error", cause.Error()),
		slog.Bool("duplicate_key", errors.Is(cause, domainErrors.ErrAlreadyExists)),
	)

	if err := u.orphans.Record(ctx, model.OrphanedSession{
		UserID:      userID,
		AmountTotal: session.AmountTotal,
		SessionURL:  session.URL,
		Reason:      cause.Error(),
	}); err != nil {
		u.logger.Error("record orphaned session failed", slog.String("error", err.Error()))
	}
}
