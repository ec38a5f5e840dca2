package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/anporsh/printery/internal/config"
)

// Module exposes payment gateway client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(Config{
		BaseURL:    p.Config.PaymentGatewayAddress,
		APIKey:     p.Config.PaymentAPIKey,
		SuccessURL: p.Config.CheckoutSuccessURL,
		CancelURL:  p.Config.CheckoutCancelURL,
	}, p.Logger)
}
