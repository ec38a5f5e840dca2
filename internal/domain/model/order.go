package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusFulfilled OrderStatus = "FULFILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var statusTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusPaid: true, OrderStatusCancelled: true},
	OrderStatusPaid:      {OrderStatusFulfilled: true, OrderStatusCancelled: true},
	OrderStatusFulfilled: {},
	OrderStatusCancelled: {},
}

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether a status change is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return statusTransitions[s][next]
}

// Order is a persisted record of a checkout attempt. Paid holds the
// gateway-reported amount total (expected charge, not proof of
// settlement); WishIDs membership is immutable after creation.
type Order struct {
	ID          int64
	UserID      int64
	Paid        int64
	Status      OrderStatus
	PaymentLink string
	WishIDs     []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
