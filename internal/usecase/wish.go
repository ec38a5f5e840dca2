package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/domain/repository"
)

// WishUseCase manages a user's pending print jobs.
type WishUseCase struct {
	wishes repository.WishRepository
}

// NewWishUseCase constructs WishUseCase.
func NewWishUseCase(wishes repository.WishRepository) *WishUseCase {
	return &WishUseCase{wishes: wishes}
}

func validateWish(wish model.Wish) error {
	if strings.TrimSpace(wish.Material) == "" {
		return domainErrors.ErrInvalidWish
	}
	if wish.SizePrice < 0 || wish.PhotoPrice < 0 {
		return domainErrors.ErrInvalidWish
	}
	if wish.Amount <= 0 {
		return domainErrors.ErrInvalidWish
	}
	return nil
}

// Create stores a new wish for the user.
func (u *WishUseCase) Create(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error) {
	wish.UserID = userID
	if err := validateWish(wish); err != nil {
		return nil, err
	}
	return u.wishes.Create(ctx, wish)
}

// ListByUser returns the user's wishes in creation order.
func (u *WishUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Wish, error) {
	return u.wishes.ListByUser(ctx, userID)
}

// Get returns one wish owned by the user.
func (u *WishUseCase) Get(ctx context.Context, userID, id int64) (*model.Wish, error) {
	wish, err := u.wishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wish.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return wish, nil
}

// Update replaces the wish configuration. Wishes referenced by an
// order are immutable by convention only; no check happens here.
func (u *WishUseCase) Update(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error) {
	if _, err := u.Get(ctx, userID, wish.ID); err != nil {
		return nil, err
	}
	wish.UserID = userID
	if err := validateWish(wish); err != nil {
		return nil, err
	}
	return u.wishes.Update(ctx, wish)
}

// Delete removes the user's wish.
func (u *WishUseCase) Delete(ctx context.Context, userID, id int64) error {
	if _, err := u.Get(ctx, userID, id); err != nil {
		return err
	}
	return u.wishes.Delete(ctx, id)
}
