package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/kafka"
	"github.com/partshub/catalog-service/internal/repo/partsapi"
	"github.com/partshub/catalog-service/internal/repo/resend"
	"github.com/partshub/catalog-service/internal/server"
	"github.com/partshub/catalog-service/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newDatabase,
			newPartsRepo,
			newContactsRepo,
			newUsersRepo,

			partsapi.NewClient,
			resend.NewClient,
			kafka.NewPublisher,

			usecase.NewPartsUsecase,
			usecase.NewBrowseUsecase,
			usecase.NewContactUsecase,
			usecase.NewAuthUsecase,

			server.NewHealthController,
			server.NewPartsController,
			server.NewBrowseController,
			server.NewContactController,
			server.NewAuthController,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
