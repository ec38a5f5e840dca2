package handlers

import (
	"context"

	"github.com/anporsh/printery/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// WishFacade encapsulates wish operations exposed via HTTP.
type WishFacade interface {
	CreateWish(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error)
	Wishes(ctx context.Context, userID int64) ([]model.Wish, error)
	Wish(ctx context.Context, userID, id int64) (*model.Wish, error)
	UpdateWish(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error)
	DeleteWish(ctx context.Context, userID, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP. CreateOrder
// runs the full checkout flow against the payment gateway.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64) (*model.Order, error)
	Orders(ctx context.Context, limit, offset int) ([]model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	RemoveOrder(ctx context.Context, id int64) error
}

// OfferFacade provides catalog operations.
type OfferFacade interface {
	Offers(ctx context.Context, limit, offset int) ([]model.Offer, error)
	Offer(ctx context.Context, id int64) (*model.Offer, error)
	CreateOffer(ctx context.Context, offer model.Offer) (*model.Offer, error)
	UpdateOffer(ctx context.Context, offer model.Offer) (*model.Offer, error)
	DeleteOffer(ctx context.Context, id int64) error
	AddOfferPrice(ctx context.Context, offerID int64, entry model.PriceEntry) (*model.PriceEntry, error)
	OfferPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error)
}

// PrintshopFacade aggregates the full set of operations used across handlers.
type PrintshopFacade interface {
	AuthFacade
	WishFacade
	OrderFacade
	OfferFacade
}
