package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func options() fx.Option {
	return fx.Options(
		coreOptions(),
		appOptions(),
		clientsOptions(),
	)
}

func Run() {
	app := fx.New(
		options(),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
	)

	app.Run()
}
