package test

import (
	"context"
	"sync"
	"time"

	"github.com/anporsh/printery/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// WishFacadeStub provides controllable behaviour for wish endpoints.
type WishFacadeStub struct {
	CreateFn func(context.Context, int64, model.Wish) (*model.Wish, error)
	ListFn   func(context.Context, int64) ([]model.Wish, error)
	GetFn    func(context.Context, int64, int64) (*model.Wish, error)
	UpdateFn func(context.Context, int64, model.Wish) (*model.Wish, error)
	DeleteFn func(context.Context, int64, int64) error
}

func (s WishFacadeStub) CreateWish(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, wish)
	}
	wish.ID = 1
	wish.UserID = userID
	return &wish, nil
}

func (s WishFacadeStub) Wishes(ctx context.Context, userID int64) ([]model.Wish, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Wish{{ID: 1, UserID: userID, Material: "Canvas", SizePrice: 1000, PhotoPrice: 500, Amount: 1}}, nil
}

func (s WishFacadeStub) Wish(ctx context.Context, userID, id int64) (*model.Wish, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.Wish{ID: id, UserID: userID, Material: "Canvas", SizePrice: 1000, PhotoPrice: 500, Amount: 1}, nil
}

func (s WishFacadeStub) UpdateWish(ctx context.Context, userID int64, wish model.Wish) (*model.Wish, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, wish)
	}
	wish.UserID = userID
	return &wish, nil
}

func (s WishFacadeStub) DeleteWish(ctx context.Context, userID, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, int64) (*model.Order, error)
	ListFn         func(context.Context, int, int) ([]model.Order, error)
	GetFn          func(context.Context, int64) (*model.Order, error)
	ChangeStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	RemoveFn       func(context.Context, int64) error
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID int64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID)
	}
	return &model.Order{
		ID:          1,
		UserID:      userID,
		Paid:        3000,
		Status:      model.OrderStatusPending,
		PaymentLink: "https://pay/session/stub",
		WishIDs:     []int64{1},
		CreatedAt:   time.Now(),
	}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit, offset)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.ChangeStatusFn != nil {
		return s.ChangeStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s OrderFacadeStub) RemoveOrder(ctx context.Context, id int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, id)
	}
	return nil
}

// OfferFacadeStub simulates catalog operations.
type OfferFacadeStub struct {
	ListFn       func(context.Context, int, int) ([]model.Offer, error)
	GetFn        func(context.Context, int64) (*model.Offer, error)
	CreateFn     func(context.Context, model.Offer) (*model.Offer, error)
	UpdateFn     func(context.Context, model.Offer) (*model.Offer, error)
	DeleteFn     func(context.Context, int64) error
	AddPriceFn   func(context.Context, int64, model.PriceEntry) (*model.PriceEntry, error)
	ListPricesFn func(context.Context, int64) ([]model.PriceEntry, error)
}

func (s OfferFacadeStub) Offers(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit, offset)
	}
	return []model.Offer{{ID: 1, Title: "Canvas 30x40", Price: 2500, Currency: "EUR"}}, nil
}

func (s OfferFacadeStub) Offer(ctx context.Context, id int64) (*model.Offer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Offer{ID: id, Title: "Canvas 30x40", Price: 2500, Currency: "EUR"}, nil
}

func (s OfferFacadeStub) CreateOffer(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, offer)
	}
	offer.ID = 1
	return &offer, nil
}

func (s OfferFacadeStub) UpdateOffer(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, offer)
	}
	return &offer, nil
}

func (s OfferFacadeStub) DeleteOffer(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s OfferFacadeStub) AddOfferPrice(ctx context.Context, offerID int64, entry model.PriceEntry) (*model.PriceEntry, error) {
	if s.AddPriceFn != nil {
		return s.AddPriceFn(ctx, offerID, entry)
	}
	entry.ID = 1
	entry.OfferID = offerID
	return &entry, nil
}

func (s OfferFacadeStub) OfferPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error) {
	if s.ListPricesFn != nil {
		return s.ListPricesFn(ctx, offerID)
	}
	return []model.PriceEntry{{ID: 1, OfferID: offerID, Amount: 2500, Currency: "EUR"}}, nil
}

// PrintshopFacadeStub aggregates facade dependencies for HTTP layer tests.
type PrintshopFacadeStub struct {
	AuthFacadeStub
	WishFacadeStub
	OrderFacadeStub
	OfferFacadeStub
}

// ReporterFacadeStub feeds the orphan reporter with canned sessions.
type ReporterFacadeStub struct {
	Sessions []model.OrphanedSession
	Err      error

	mu    sync.Mutex
	calls int
}

func (s *ReporterFacadeStub) OutstandingOrphans(ctx context.Context, limit int) ([]model.OrphanedSession, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if limit > 0 && limit < len(s.Sessions) {
		return s.Sessions[:limit], nil
	}
	return s.Sessions, nil
}

// Calls reports how many times the reporter polled the stub.
func (s *ReporterFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
