package dto

import "time"

// WishRequest describes a wish create/update payload. Prices are in
// minor currency units.
type WishRequest struct {
	Material   string `json:"material"`
	SizePrice  int64  `json:"size_price"`
	PhotoPrice int64  `json:"photo_price"`
	Amount     int32  `json:"amount"`
}

// WishResponse describes a stored wish.
type WishResponse struct {
	ID         int64     `json:"id"`
	Material   string    `json:"material"`
	SizePrice  int64     `json:"size_price"`
	PhotoPrice int64     `json:"photo_price"`
	Amount     int32     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
