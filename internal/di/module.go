package di

import (
	"github.com/anporsh/printery/internal/adapter/payment"
	"github.com/anporsh/printery/internal/app"
	"github.com/anporsh/printery/internal/config"
	"github.com/anporsh/printery/internal/logger"
	"github.com/anporsh/printery/internal/pkg/auth"
	"github.com/anporsh/printery/internal/server/http/handlers"
	"github.com/anporsh/printery/internal/server/http/router"
	"github.com/anporsh/printery/internal/storage/postgres"
	"github.com/anporsh/printery/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(client payment.Client) usecase.PaymentGateway { return client }),
		fx.Provide(func(facade *app.PrintshopFacade) handlers.PrintshopFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
