package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
)

// UserRepositoryStub keeps users in memory for facade tests.
type UserRepositoryStub struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User
}

// NewUserRepositoryStub constructs an empty in-memory user repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{nextID: 1, users: make(map[string]*model.User)}
}

func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[login]; ok {
		return nil, &domainErrors.DuplicateKeyError{Field: "login", Value: login}
	}
	user := &model.User{ID: s.nextID, Login: login, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.nextID++
	s.users[login] = user
	return user, nil
}

func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[login]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// WishRepositoryStub returns canned wishes and records writes.
type WishRepositoryStub struct {
	Items    []model.Wish
	CreateFn func(context.Context, model.Wish) (*model.Wish, error)
	Err      error
}

func (s *WishRepositoryStub) Create(ctx context.Context, wish model.Wish) (*model.Wish, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, wish)
	}
	wish.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, wish)
	return &wish, nil
}

func (s *WishRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Wish, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, w := range s.Items {
		if w.ID == id {
			wish := w
			return &wish, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *WishRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Wish, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Wish
	for _, w := range s.Items {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (s *WishRepositoryStub) Update(ctx context.Context, wish model.Wish) (*model.Wish, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i, w := range s.Items {
		if w.ID == wish.ID {
			wish.UserID = w.UserID
			s.Items[i] = wish
			return &wish, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *WishRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, w := range s.Items {
		if w.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub records created orders and serves canned lists.
type OrderRepositoryStub struct {
	Orders   []model.Order
	CreateFn func(context.Context, model.Order) (*model.Order, error)
	Err      error
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = int64(len(s.Orders) + 1)
	s.Orders = append(s.Orders, order)
	return &order, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if offset >= len(s.Orders) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.Orders) {
		end = len(s.Orders)
	}
	return s.Orders[offset:end], nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders[i].Status = status
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OfferRepositoryStub serves canned offers.
type OfferRepositoryStub struct {
	Offers  []model.Offer
	Entries []model.PriceEntry
	Err     error
}

func (s *OfferRepositoryStub) Create(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	offer.ID = int64(len(s.Offers) + 1)
	s.Offers = append(s.Offers, offer)
	return &offer, nil
}

func (s *OfferRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Offers {
		if o.ID == id {
			offer := o
			return &offer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OfferRepositoryStub) List(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Offers, nil
}

func (s *OfferRepositoryStub) Update(ctx context.Context, offer model.Offer) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i, o := range s.Offers {
		if o.ID == offer.ID {
			s.Offers[i] = offer
			return &offer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OfferRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, o := range s.Offers {
		if o.ID == id {
			s.Offers = append(s.Offers[:i], s.Offers[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OfferRepositoryStub) AddPrice(ctx context.Context, entry model.PriceEntry) (*model.PriceEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	entry.ID = int64(len(s.Entries) + 1)
	s.Entries = append(s.Entries, entry)
	return &entry, nil
}

func (s *OfferRepositoryStub) ListPrices(ctx context.Context, offerID int64) ([]model.PriceEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.PriceEntry
	for _, e := range s.Entries {
		if e.OfferID == offerID {
			result = append(result, e)
		}
	}
	return result, nil
}

// OrphanRepositoryStub records orphaned sessions in memory.
type OrphanRepositoryStub struct {
	Sessions  []model.OrphanedSession
	RecordErr error
	ListErr   error
}

func (s *OrphanRepositoryStub) Record(ctx context.Context, session model.OrphanedSession) error {
	if s.RecordErr != nil {
		return s.RecordErr
	}
	s.Sessions = append(s.Sessions, session)
	return nil
}

func (s *OrphanRepositoryStub) ListOutstanding(ctx context.Context, limit int) ([]model.OrphanedSession, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if limit > 0 && limit < len(s.Sessions) {
		return s.Sessions[:limit], nil
	}
	return s.Sessions, nil
}

// GatewayStub fabricates checkout sessions from submitted line items.
type GatewayStub struct {
	SessionFn func(context.Context, []model.LineItem) (*model.CheckoutSession, error)
	Calls     [][]model.LineItem
}

func (s *GatewayStub) CreateCheckoutSession(ctx context.Context, items []model.LineItem) (*model.CheckoutSession, error) {
	s.Calls = append(s.Calls, items)
	if s.SessionFn != nil {
		return s.SessionFn(ctx, items)
	}
	var total int64
	for _, item := range items {
		total += item.UnitAmount * int64(item.Quantity)
	}
	return &model.CheckoutSession{AmountTotal: total, URL: "https://pay/session/stub"}, nil
}
