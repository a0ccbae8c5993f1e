package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/authgate/internal/app"
	"github.com/polkiloo/authgate/internal/config"
	"github.com/polkiloo/authgate/internal/logger"
	"github.com/polkiloo/authgate/internal/pkg/auth"
	"github.com/polkiloo/authgate/internal/server/http/handlers"
	"github.com/polkiloo/authgate/internal/server/http/router"
	"github.com/polkiloo/authgate/internal/storage/postgres"
	"github.com/polkiloo/authgate/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.AccountFacade) handlers.AccountFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
