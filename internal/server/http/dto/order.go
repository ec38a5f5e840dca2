package dto

import "time"

// OrderResponse describes a persisted order.
type OrderResponse struct {
	ID          int64     `json:"id"`
	Paid        int64     `json:"paid"`
	Status      string    `json:"status"`
	PaymentLink string    `json:"payment_link"`
	WishIDs     []int64   `json:"wish_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderStatusRequest describes a status change payload.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// MessageResponse confirms a destructive operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse reports a uniqueness violation together with the
// conflicting field and value.
type ConflictResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
	Value string `json:"value"`
}
