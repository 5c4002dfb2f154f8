package di

import (
	"github.com/onyxlab/onyx/internal/app"
	"github.com/onyxlab/onyx/internal/cache"
	"github.com/onyxlab/onyx/internal/config"
	"github.com/onyxlab/onyx/internal/logger"
	"github.com/onyxlab/onyx/internal/pkg/auth"
	"github.com/onyxlab/onyx/internal/server/http/handlers"
	"github.com/onyxlab/onyx/internal/server/http/router"
	"github.com/onyxlab/onyx/internal/storage/postgres"
	"github.com/onyxlab/onyx/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.NotesFacade) handlers.NotesFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
