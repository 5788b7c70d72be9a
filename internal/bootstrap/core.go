package bootstrap

import (
	"context"
	"log/slog"
	"net"
	"time"

	_ "github.com/init-pkg/contacts-uploader/docs"
	"github.com/init-pkg/contacts-uploader/internal/config"
	"github.com/init-pkg/contacts-uploader/internal/logger"
	"github.com/init-pkg/contacts-uploader/internal/server"

	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.Load,
			logger.New,
			server.NewApp,
		),
		fx.Invoke(
			registerDocs,
			startServer,
		),
	)
}

func registerDocs(mainApp *fiber.App) {
	mainApp.Get("/swagger/*", swagger.HandlerDefault)
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, mainApp *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Http.Addr())
			if err != nil {
				return err
			}

			go func() {
				if err := mainApp.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					log.Error("http server stopped", "error", err)
					_ = shutdowner.Shutdown()
				}
			}()

			log.Info("http server started", "addr", cfg.Http.Addr())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down", "timeout", cfg.Http.ShutdownTimeout)

			ctx, cancel := shutdownContext(ctx, cfg.Http.ShutdownTimeout)
			defer cancel()

			return mainApp.ShutdownWithContext(ctx)
		},
	})
}

// shutdownContext bounds graceful shutdown by the configured timeout, if any.
func shutdownContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
