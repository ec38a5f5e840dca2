package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/anporsh/printery/internal/domain/errors"
	"github.com/anporsh/printery/internal/domain/model"
	testhelpers "github.com/anporsh/printery/internal/test"
	"github.com/anporsh/printery/internal/usecase"
)

func newFacade() (*PrintshopFacade, *testhelpers.UserRepositoryStub, *testhelpers.WishRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.GatewayStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	wishRepo := &testhelpers.WishRepositoryStub{}
	wishUC := usecase.NewWishUseCase(wishRepo)

	offerRepo := &testhelpers.OfferRepositoryStub{}
	offerUC := usecase.NewOfferUseCase(offerRepo)

	orderRepo := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo)

	orphanRepo := &testhelpers.OrphanRepositoryStub{}
	gateway := &testhelpers.GatewayStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	checkoutUC := usecase.NewCheckoutUseCase(wishRepo, orderRepo, orphanRepo, gateway, logger)

	facade := NewPrintshopFacade(authUC, wishUC, offerUC, orderUC, checkoutUC, orphanRepo)
	return facade, userRepo, wishRepo, orderRepo, gateway
}

func TestPrintshopFacadeAuth(t *testing.T) {
	facade, users, _, _, _ := newFacade()
	token, err := facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := users.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Login != "user" {
		t.Fatalf("unexpected stored login %q", stored.Login)
	}

	token, err = facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestPrintshopFacadeWishes(t *testing.T) {
	facade, _, wishes, _, _ := newFacade()

	created, err := facade.CreateWish(context.Background(), 7, model.Wish{Material: "Canvas", SizePrice: 1000, PhotoPrice: 500, Amount: 2})
	if err != nil {
		t.Fatalf("create wish error: %v", err)
	}
	if created.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", created.UserID)
	}

	listed, err := facade.Wishes(context.Background(), 7)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one wish, got %v err=%v", listed, err)
	}

	if _, err := facade.Wish(context.Background(), 8, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("foreign wish must read as missing, got %v", err)
	}

	if err := facade.DeleteWish(context.Background(), 7, created.ID); err != nil {
		t.Fatalf("delete wish error: %v", err)
	}
	if len(wishes.Items) != 0 {
		t.Fatalf("expected wish removed, got %v", wishes.Items)
	}
}

func TestPrintshopFacadeCheckout(t *testing.T) {
	facade, _, wishes, orders, gateway := newFacade()
	wishes.Items = []model.Wish{
		{ID: 11, UserID: 7, Material: "Canvas", SizePrice: 1000, PhotoPrice: 500, Amount: 2},
	}

	order, err := facade.CreateOrder(context.Background(), 7)
	if err != nil {
		t.Fatalf("create order error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %v", order.Status)
	}
	if order.Paid != 3000 {
		t.Fatalf("expected gateway total 3000, got %d", order.Paid)
	}
	if len(gateway.Calls) != 1 {
		t.Fatalf("expected one gateway call, got %d", len(gateway.Calls))
	}
	if len(orders.Orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(orders.Orders))
	}
}

func TestPrintshopFacadeOrders(t *testing.T) {
	facade, _, _, orders, _ := newFacade()
	orders.Orders = []model.Order{
		{ID: 1, Status: model.OrderStatusPending},
		{ID: 2, Status: model.OrderStatusPending},
	}

	listed, err := facade.Orders(context.Background(), 10, 0)
	if err != nil || len(listed) != 2 {
		t.Fatalf("expected two orders, got %v err=%v", listed, err)
	}

	updated, err := facade.ChangeOrderStatus(context.Background(), 1, model.OrderStatusPaid)
	if err != nil {
		t.Fatalf("change status error: %v", err)
	}
	if updated.Status != model.OrderStatusPaid {
		t.Fatalf("expected PAID, got %v", updated.Status)
	}

	if _, err := facade.ChangeOrderStatus(context.Background(), 2, model.OrderStatusFulfilled); !errors.Is(err, domainErrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected transition rejection, got %v", err)
	}

	if err := facade.RemoveOrder(context.Background(), 2); err != nil {
		t.Fatalf("remove order error: %v", err)
	}
}

func TestPrintshopFacadeOffers(t *testing.T) {
	facade, _, _, _, _ := newFacade()

	offer, err := facade.CreateOffer(context.Background(), model.Offer{Title: "Canvas 30x40", Price: 2500, Currency: "EUR"})
	if err != nil {
		t.Fatalf("create offer error: %v", err)
	}

	listed, err := facade.Offers(context.Background(), 20, 0)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one offer, got %v err=%v", listed, err)
	}

	got, err := facade.Offer(context.Background(), offer.ID)
	if err != nil || got.Title != "Canvas 30x40" {
		t.Fatalf("unexpected offer %v err=%v", got, err)
	}
}

func TestPrintshopFacadeOutstandingOrphans(t *testing.T) {
	facade, _, wishes, orders, _ := newFacade()
	wishes.Items = []model.Wish{{ID: 11, UserID: 7, Material: "Canvas", SizePrice: 1000, PhotoPrice: 500, Amount: 1}}
	orders.CreateFn = func(context.Context, model.Order) (*model.Order, error) {
		return nil, &domainErrors.DuplicateKeyError{Field: "payment_link", Value: "https://pay/session/stub"}
	}

	if _, err := facade.CreateOrder(context.Background(), 7); err == nil {
		t.Fatal("expected checkout failure")
	}

	sessions, err := facade.OutstandingOrphans(context.Background(), 50)
	if err != nil {
		t.Fatalf("outstanding orphans error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected orphaned session recorded, got %d", len(sessions))
	}
}
