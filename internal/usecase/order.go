package usecase

import (
	"context"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/domain/repository"
)

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// OrderUseCase encapsulates order record operations.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List returns a page of orders in natural insertion order.
func (u *OrderUseCase) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	if limit > maxOrderPageSize {
		limit = maxOrderPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return u.orders.List(ctx, limit, offset)
}

// Get returns one order by id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// UpdateStatus moves the order along its lifecycle. Transitions are
// gated by the status state machine; regressions and jumps are
// rejected.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatusTransition
	}

	current, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, domainErrors.ErrInvalidStatusTransition
	}

	return u.orders.UpdateStatus(ctx, id, status)
}

// Remove deletes the order.
func (u *OrderUseCase) Remove(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}
