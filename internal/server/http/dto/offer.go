package dto

import "time"

// OfferRequest describes an offer create/update payload.
type OfferRequest struct {
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
	ImageURL string `json:"image_url"`
}

// OfferResponse describes a catalog offer.
type OfferResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Currency  string    `json:"currency"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// PriceEntryRequest describes a dated price appended to an offer.
type PriceEntryRequest struct {
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	EffectiveFrom time.Time `json:"effective_from"`
}

// PriceEntryResponse describes a stored price entry.
type PriceEntryResponse struct {
	ID            int64     `json:"id"`
	OfferID       int64     `json:"offer_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	EffectiveFrom time.Time `json:"effective_from"`
}
