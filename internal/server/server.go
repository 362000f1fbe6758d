package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/partshub/catalog-service/internal/config"
	pkgmdw "github.com/partshub/catalog-service/internal/server/middleware"
	"github.com/partshub/catalog-service/internal/usecase"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	authUsecase usecase.AuthUsecase,
	health HealthController,
	parts PartsController,
	browse BrowseController,
	contact ContactController,
	auth AuthController,
) {
	httpLog := logger.MustNamed("http")

	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(httpLog)

	logConfig := pkgmdw.LogRequestConfig{
		Logger: httpLog,
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
		KeyAndValues: func(c echo.Context) []any {
			args := make([]any, 0, 2)
			if userID := pkgmdw.GetUserID(c); userID != "" {
				args = append(args, "user_id", userID)
			}
			return args
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(pkgmdw.CORS(regexp.MustCompile(`.*`)))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))
	pkgmdw.PprofWrap(e)

	e.GET("/health", health.Health)

	api := e.Group("/api/v1")

	api.GET("/parts", parts.List)
	api.GET("/parts/filters", parts.FilterOptions)
	api.GET("/parts/:id", parts.Get)

	admin := api.Group("", pkgmdw.JWTAuth(authUsecase))
	admin.POST("/parts", parts.Create)
	admin.PUT("/parts/:id", parts.Update)
	admin.DELETE("/parts/:id", parts.Delete)
	admin.POST("/parts/seed", parts.Seed)

	sessions := api.Group("/browse/sessions")
	sessions.POST("", browse.CreateSession)
	sessions.GET("/:id", browse.GetState)
	sessions.PUT("/:id/filters", browse.UpdateFilters)
	sessions.DELETE("/:id/filters", browse.ClearFilters)
	sessions.PUT("/:id/page/:page", browse.GoToPage)
	sessions.PUT("/:id/selected/:partId", browse.SelectPart)
	sessions.DELETE("/:id/selected", browse.SelectPart)
	sessions.POST("/:id/refresh", browse.Refresh)
	sessions.DELETE("/:id", browse.CloseSession)

	api.POST("/contact", contact.Submit)

	api.POST("/auth/signup", auth.Signup)
	api.POST("/auth/login", auth.Login)
	api.GET("/auth/profile", auth.GetProfile, pkgmdw.JWTAuth(authUsecase))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
