package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/anporsh/printery/internal/adapter/payment"
	"github.com/anporsh/printery/internal/app"
	"github.com/anporsh/printery/internal/config"
	"github.com/anporsh/printery/internal/domain/repository"
	"github.com/anporsh/printery/internal/storage/postgres"
	"github.com/anporsh/printery/internal/test"
	"go.uber.org/fx"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:            ":0",
		DatabaseURI:           "postgres://stub",
		PaymentGatewayAddress: "http://localhost",
		PaymentAPIKey:         "key",
		CheckoutSuccessURL:    "http://localhost/ok",
		CheckoutCancelURL:     "http://localhost/cancel",
		AuthSecret:            "secret",
		ShutdownTimeout:       time.Millisecond,
		OrphanReportInterval:  time.Millisecond,
		OrphanReportBatch:     1,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	wishRepo := &test.WishRepositoryStub{}
	offerRepo := &test.OfferRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	orphanRepo := &test.OrphanRepositoryStub{}
	gateway := &test.GatewayStub{}

	var facade *app.PrintshopFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.WishRepository(wishRepo)),
			fx.Replace(repository.OfferRepository(offerRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.OrphanedSessionRepository(orphanRepo)),
			fx.Replace(payment.Client(gateway)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected printshop facade instance")
	}
}
