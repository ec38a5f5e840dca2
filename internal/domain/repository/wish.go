package repository

import (
	"context"

	"github.com/anporsh/printery/internal/domain/model"
)

// WishRepository describes persistence operations for wishes.
// ListByUser returns full wish objects in creation order.
type WishRepository interface {
	Create(ctx context.Context, wish model.Wish) (*model.Wish, error)
	GetByID(ctx context.Context, id int64) (*model.Wish, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Wish, error)
	Update(ctx context.Context, wish model.Wish) (*model.Wish, error)
	Delete(ctx context.Context, id int64) error
}
