package repository

import (
	"context"

	"github.com/anporsh/printery/internal/domain/model"
)

// OfferRepository describes persistence operations for catalog offers.
type OfferRepository interface {
	Create(ctx context.Context, offer model.Offer) (*model.Offer, error)
	GetByID(ctx context.Context, id int64) (*model.Offer, error)
	List(ctx context.Context, limit, offset int) ([]model.Offer, error)
	Update(ctx context.Context, offer model.Offer) (*model.Offer, error)
	Delete(ctx context.Context, id int64) error
	AddPrice(ctx context.Context, entry model.PriceEntry) (*model.PriceEntry, error)
	ListPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error)
}
