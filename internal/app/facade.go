package app

import (
	"context"

	"github.com/anporsh/printery/internal/domain/model"
	"github.com/anporsh/printery/internal/domain/repository"
	"github.com/anporsh/printery/internal/usecase"
)

// PrintshopFacade bundles the use cases behind the HTTP handlers and
// the orphan reporter.
type PrintshopFacade struct {
	auth     *usecase.AuthUseCase
	wishes   *usecase.WishUseCase
	offers   *usecase.OfferUseCase
	orders   *usecase.OrderUseCase
	checkout *usecase.CheckoutUseCase
	orphans  repository.OrphanedSessionRepository
}

// NewPrintshopFacade constructs the application facade.
func NewPrintshopFacade(
	auth *usecase.AuthUseCase,
	wishes *usecase.WishUseCase,
	offers *usecase.OfferUseCase,
	orders *usecase.OrderUseCase,
	checkout *usecase.CheckoutUseCase,
	orphans repository.OrphanedSessionRepository,
) *PrintshopFacade {
	return &PrintshopFacade{
		auth:     auth,
		wishes:   wishes,
		offers:   offers,
		orders:   orders,
		checkout: checkout,
		orphans:  orphans,
	}
}

func (f *PrintshopFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *PrintshopFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *PrintshopFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *PrintshopFacade) CreateWish(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error) {
	return f.wishes.Create(ctx, userID, wish)
}

func (f *PrintshopFacade) Wishes(ctx context.Context, userID int64) ([]model.Wish, error) {
	return f.wishes.ListByUser(ctx, userID)
}

func (f *PrintshopFacade) Wish(ctx context.Context, userID, id int64) (*model.Wish, error) {
	return f.wishes.Get(ctx, userID, id)
}

func (f *PrintshopFacade) UpdateWish(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error) {
	return f.wishes.Update(ctx, userID, wish)
}

func (f *PrintshopFacade) DeleteWish(ctx context.Context, userID, id int64) error {
	return f.wishes.Delete(ctx, userID, id)
}

func (f *PrintshopFacade) CreateOrder(ctx context.Context, userID int64) (*model.Order, error) {
	return f.checkout.Create(ctx, userID)
}

func (f *PrintshopFacade) Orders(ctx context.Context, limit, offset int) ([]model.Order, error) {
	return f.orders.List(ctx, limit, offset)
}

func (f *PrintshopFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *PrintshopFacade) ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *PrintshopFacade) RemoveOrder(ctx context.Context, id int64) error {
	return f.orders.Remove(ctx, id)
}

func (f *PrintshopFacade) Offers(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	return f.offers.List(ctx, limit, offset)
}

func (f *PrintshopFacade) Offer(ctx context.Context, id int64) (*model.Offer, error) {
	return f.offers.Get(ctx, id)
}

func (f *PrintshopFacade) CreateOffer(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	return f.offers.Create(ctx, offer)
}

func (f *PrintshopFacade) UpdateOffer(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	return f.offers.Update(ctx, offer)
}

func (f *PrintshopFacade) DeleteOffer(ctx context.Context, id int64) error {
	return f.offers.Delete(ctx, id)
}

func (f *PrintshopFacade) AddOfferPrice(ctx context.Context, offerID int64, entry model.PriceEntry) (*model.PriceEntry, error) {
	return f.offers.AddPrice(ctx, offerID, entry)
}

func (f *PrintshopFacade) OfferPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error) {
	return f.offers.Prices(ctx, offerID)
}

func (f *PrintshopFacade) OutstandingOrphans(ctx context.Context, limit int) ([]model.OrphanedSession, error) {
	return f.orphans.ListOutstanding(ctx, limit)
}
