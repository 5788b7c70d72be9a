package bootstrap

import (
	"io"
	"log/slog"

	"github.com/init-pkg/contacts-uploader/domain/app"
	db_client "github.com/init-pkg/contacts-uploader/internal/clients/db"
	rabbitmq_client "github.com/init-pkg/contacts-uploader/internal/clients/rabbitmq"
	redis_client "github.com/init-pkg/contacts-uploader/internal/clients/redis"
	"github.com/init-pkg/contacts-uploader/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			newDB,
			newPublisher,
			newHistory,
		),
	)
}

func newDB(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := db_client.New(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}))

	return db, nil
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) app.ContactEventPublisher {
	var p = rabbitmq_client.New(cfg, log)
	closeOnStop(lc, p)
	return p
}

func newHistory(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) app.UploadHistory {
	var h = redis_client.New(cfg, log)
	closeOnStop(lc, h)
	return h
}

func closeOnStop(lc fx.Lifecycle, v any) {
	if closer, ok := v.(io.Closer); ok {
		lc.Append(fx.StopHook(closer.Close))
	}
}
