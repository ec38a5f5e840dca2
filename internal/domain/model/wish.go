package model

import "time"

// Wish is a configured, not-yet-ordered print job. Prices are stored
// in minor currency units, already materialized at configuration time.
// Once a wish is referenced by an order it is treated as immutable
// history; nothing below enforces that beyond convention.
type Wish struct {
	ID         int64
	UserID     int64
	Material   string
	SizePrice  int64
	PhotoPrice int64
	Amount     int32
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UnitAmount is the charge for a single unit of the wish.
func (w Wish) UnitAmount() int64 {
	return w.SizePrice + w.PhotoPrice
}
