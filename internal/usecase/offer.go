package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/domain/repository"
)

// OfferUseCase manages the catalog of purchasable templates.
type OfferUseCase struct {
	offers repository.OfferRepository
}

// NewOfferUseCase constructs OfferUseCase.
func NewOfferUseCase(offers repository.OfferRepository) *OfferUseCase {
	return &OfferUseCase{offers: offers}
}

func validateOffer(offer model.Offer) error {
	if strings.TrimSpace(offer.Title) == "" {
		return domainErrors.ErrInvalidOffer
	}
	if offer.Price < 0 {
		return domainErrors.ErrInvalidOffer
	}
	return nil
}

func validatePriceEntry(entry model.PriceEntry) error {
	if entry.Amount < 0 {
		return domainErrors.ErrInvalidPriceEntry
	}
	if len(entry.Currency) != 3 {
		return domainErrors.ErrInvalidPriceEntry
	}
	if entry.EffectiveFrom.IsZero() {
		return domainErrors.ErrInvalidPriceEntry
	}
	return nil
}

// List returns a catalog page.
func (u *OfferUseCase) List(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	if limit > maxOrderPageSize {
		limit = maxOrderPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return u.offers.List(ctx, limit, offset)
}

// Get returns one offer by id.
func (u *OfferUseCase) Get(ctx context.Context, id int64) (*model.Offer, error) {
	return u.offers.GetByID(ctx, id)
}

// Create stores a new catalog offer.
func (u *OfferUseCase) Create(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	if err := validateOffer(offer); err != nil {
		return nil, err
	}
	return u.offers.Create(ctx, offer)
}

// Update replaces the offer.
func (u *OfferUseCase) Update(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	if err := validateOffer(offer); err != nil {
		return nil, err
	}
	return u.offers.Update(ctx, offer)
}

// Delete removes the offer.
func (u *OfferUseCase) Delete(ctx context.Context, id int64) error {
	return u.offers.Delete(ctx, id)
}

// AddPrice appends a dated price entry after validating its schema.
func (u *OfferUseCase) AddPrice(ctx context.Context, offerID int64, entry model.PriceEntry) (*model.PriceEntry, error) {
	entry.OfferID = offerID
	if err := validatePriceEntry(entry); err != nil {
		return nil, err
	}
	if _, err := u.offers.GetByID(ctx, offerID); err != nil {
		return nil, err
	}
	return u.offers.AddPrice(ctx, entry)
}

// Prices lists an offer's price history.
func (u *OfferUseCase) Prices(ctx context.Context, offerID int64) ([]model.PriceEntry, error) {
	return u.offers.ListPrices(ctx, offerID)
}
