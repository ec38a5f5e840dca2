package model

import "time"

// LineItem is a priced, quantified unit submitted to the payment
// gateway. Built per checkout call, never persisted.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int32
}

// CheckoutSession holds the gateway-computed fields copied into the
// order record.
type CheckoutSession struct {
	AmountTotal int64
	URL         string
}

// OrphanedSession records a checkout session that was opened at the
// gateway but whose order failed to persist.
type OrphanedSession struct {
	ID          int64
	UserID      int64
	AmountTotal int64
	SessionURL  string
	Reason      string
	CreatedAt   time.Time
}
