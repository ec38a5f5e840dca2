package repository

import (
	"context"

	"github.com/anporsh/printery/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
// Create performs a single insert; List pages over natural insertion
// order.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, limit, offset int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
