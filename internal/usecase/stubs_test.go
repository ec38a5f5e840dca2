package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/anporsh/printery/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type stubWishRepo struct {
	createFn     func(context.Context, model.Wish) (*model.Wish, error)
	getFn        func(context.Context, int64) (*model.Wish, error)
	listByUserFn func(context.Context, int64) ([]model.Wish, error)
	updateFn     func(context.Context, model.Wish) (*model.Wish, error)
	deleteFn     func(context.Context, int64) error
}

func (s stubWishRepo) Create(ctx context.Context, wish model.Wish) (*model.Wish, error) {
	return s.createFn(ctx, wish)
}

func (s stubWishRepo) GetByID(ctx context.Context, id int64) (*model.Wish, error) {
	return s.getFn(ctx, id)
}

func (s stubWishRepo) ListByUser(ctx context.Context, userID int64) ([]model.Wish, error) {
	return s.listByUserFn(ctx, userID)
}

func (s stubWishRepo) Update(ctx context.Context, wish model.Wish) (*model.Wish, error) {
	return s.updateFn(ctx, wish)
}

func (s stubWishRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubOrderRepo struct {
	createFn       func(context.Context, model.Order) (*model.Order, error)
	getFn          func(context.Context, int64) (*model.Order, error)
	listFn         func(context.Context, int, int) ([]model.Order, error)
	updateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	deleteFn       func(context.Context, int64) error
}

func (s stubOrderRepo) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	return s.createFn(ctx, order)
}

func (s stubOrderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return s.getFn(ctx, id)
}

func (s stubOrderRepo) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	return s.listFn(ctx, limit, offset)
}

func (s stubOrderRepo) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s stubOrderRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubOrphanRepo struct {
	recordFn func(context.Context, model.OrphanedSession) error
	listFn   func(context.Context, int) ([]model.OrphanedSession, error)
	recorded []model.OrphanedSession
}

func (s *stubOrphanRepo) Record(ctx context.Context, session model.OrphanedSession) error {
	if s.recordFn != nil {
		return s.recordFn(ctx, session)
	}
	s.recorded = append(s.recorded, session)
	return nil
}

func (s *stubOrphanRepo) ListOutstanding(ctx context.Context, limit int) ([]model.OrphanedSession, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit)
	}
	return s.recorded, nil
}

type stubOfferRepo struct {
	createFn     func(context.Context, model.Offer) (*model.Offer, error)
	getFn        func(context.Context, int64) (*model.Offer, error)
	listFn       func(context.Context, int, int) ([]model.Offer, error)
	updateFn     func(context.Context, model.Offer) (*model.Offer, error)
	deleteFn     func(context.Context, int64) error
	addPriceFn   func(context.Context, model.PriceEntry) (*model.PriceEntry, error)
	listPricesFn func(context.Context, int64) ([]model.PriceEntry, error)
}

func (s stubOfferRepo) Create(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	return s.createFn(ctx, offer)
}

func (s stubOfferRepo) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	return s.getFn(ctx, id)
}

func (s stubOfferRepo) List(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	return s.listFn(ctx, limit, offset)
}

func (s stubOfferRepo) Update(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	return s.updateFn(ctx, offer)
}

func (s stubOfferRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s stubOfferRepo) AddPrice(ctx context.Context, entry model.PriceEntry) (*model.PriceEntry, error) {
	return s.addPriceFn(ctx, entry)
}

func (s stubOfferRepo) ListPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error) {
	return s.listPricesFn(ctx, offerID)
}

type stubUserRepo struct {
	createFn     func(context.Context, string, string) (*model.User, error)
	getByLoginFn func(context.Context, string) (*model.User, error)
	getByIDFn    func(context.Context, int64) (*model.User, error)
}

func (s stubUserRepo) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	return s.createFn(ctx, login, passwordHash)
}

func (s stubUserRepo) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return s.getByLoginFn(ctx, login)
}

func (s stubUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.getByIDFn(ctx, id)
}

type stubGateway struct {
	createFn func(context.Context, []model.LineItem) (*model.CheckoutSession, error)
	calls    [][]model.LineItem
}

func (s *stubGateway) CreateCheckoutSession(ctx context.Context, items []model.LineItem) (*model.CheckoutSession, error) {
	s.calls = append(s.calls, items)
	if s.createFn != nil {
		return s.createFn(ctx, items)
	}
	var total int64
	for _, item := range items {
		total += item.UnitAmount * int64(item.Quantity)
	}
	return &model.CheckoutSession{AmountTotal: total, URL: "https://pay/session/stub"}, nil
}
