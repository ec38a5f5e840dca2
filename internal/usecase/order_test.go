package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
)

func TestOrderUseCaseListClampsPagination(t *testing.T) {
	cases := []struct {
		name               string
		limit, offset      int
		wantLimit, wantOff int
	}{
		{name: "defaults", limit: 0, offset: -5, wantLimit: defaultOrderPageSize, wantOff: 0},
		{name: "capped", limit: 1000, offset: 10, wantLimit: maxOrderPageSize, wantOff: 10},
		{name: "passthrough", limit: 5, offset: 2, wantLimit: 5, wantOff: 2},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewOrderUseCase(stubOrderRepo{listFn: func(_ context.Context, limit, offset int) ([]model.Order, error) {
				if limit != tt.wantLimit || offset != tt.wantOff {
					t.Fatalf("expected limit/offset %d/%d, got %d/%d", tt.wantLimit, tt.wantOff, limit, offset)
				}
				return nil, nil
			}})
			if _, err := uc.List(context.Background(), tt.limit, tt.offset); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestOrderUseCaseGetPropagatesNotFound(t *testing.T) {
	uc := NewOrderUseCase(stubOrderRepo{getFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})
	if _, err := uc.Get(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		current model.OrderStatus
		next    model.OrderStatus
		ok      bool
	}{
		{name: "pending to paid", current: model.OrderStatusPending, next: model.OrderStatusPaid, ok: true},
		{name: "pending to cancelled", current: model.OrderStatusPending, next: model.OrderStatusCancelled, ok: true},
		{name: "paid to fulfilled", current: model.OrderStatusPaid, next: model.OrderStatusFulfilled, ok: true},
		{name: "regression rejected", current: model.OrderStatusPaid, next: model.OrderStatusPending, ok: false},
		{name: "jump rejected", current: model.OrderStatusPending, next: model.OrderStatusFulfilled, ok: false},
		{name: "terminal state frozen", current: model.OrderStatusCancelled, next: model.OrderStatusPaid, ok: false},
		{name: "unknown status rejected", current: model.OrderStatusPending, next: model.OrderStatus("SHINY"), ok: false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			uc := NewOrderUseCase(stubOrderRepo{
				getFn: func(context.Context, int64) (*model.Order, error) {
					return &model.Order{ID: 1, Status: tt.current}, nil
				},
				updateStatusFn: func(_ context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
					updated = true
					return &model.Order{ID: id, Status: status}, nil
				},
			})

			order, err := uc.UpdateStatus(context.Background(), 1, tt.next)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if order.Status != tt.next {
					t.Fatalf("expected status %s, got %s", tt.next, order.Status)
				}
			} else {
				if !errors.Is(err, domainErrors.ErrInvalidStatusTransition) {
					t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
				}
				if updated {
					t.Fatal("repository must not be updated for an illegal transition")
				}
			}
		})
	}
}

func TestOrderUseCaseUpdateStatusMissingOrder(t *testing.T) {
	uc := NewOrderUseCase(stubOrderRepo{getFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})
	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusPaid); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderUseCaseRemove(t *testing.T) {
	removed := int64(0)
	uc := NewOrderUseCase(stubOrderRepo{deleteFn: func(_ context.Context, id int64) error {
		removed = id
		return nil
	}})
	if err := uc.Remove(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 7 {
		t.Fatalf("expected delete of order 7, got %d", removed)
	}
}
