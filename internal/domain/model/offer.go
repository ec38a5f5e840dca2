package model

import "time"

// Offer is a purchasable print template from the catalog.
type Offer struct {
	ID        int64
	Title     string
	Price     int64
	Currency  string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceEntry is a dated price appended to an offer.
type PriceEntry struct {
	ID            int64
	OfferID       int64
	Amount        int64
	Currency      string
	EffectiveFrom time.Time
	CreatedAt     time.Time
}
