package db_client

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/init-pkg/contacts-uploader/internal/config"

	drivermysql "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the contacts database for the configured driver.
func New(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var dbCfg = cfg.Infrastructure.Db

	dialector, err := Dialector(&dbCfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log, dbCfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbCfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if dbCfg.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpen)
	}
	if dbCfg.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdle)
	}

	log.Info("database connected", "driver", dbCfg.Driver, "table", dbCfg.Table)
	return db, nil
}

func Dialector(cfg *config.Db) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(MySQLDSN(cfg)), nil
	case "postgres":
		// lib/pq registers itself as "postgres"
		return postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        PostgresDSN(cfg),
		}), nil
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func MySQLDSN(cfg *config.Db) string {
	var c = drivermysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c.DBName = cfg.Name
	c.ParseTime = true
	// values are inlined client side, so a bulk insert is not bound by the
	// server limit of 65535 placeholders per prepared statement
	c.InterpolateParams = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": "utf8mb4"}

	return c.FormatDSN()
}

func PostgresDSN(cfg *config.Db) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

func newGormLogger(log *slog.Logger, level string) logger.Interface {
	var gormLevel logger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		gormLevel = logger.Silent
	case "error":
		gormLevel = logger.Error
	case "info":
		gormLevel = logger.Info
	default:
		gormLevel = logger.Warn
	}

	return logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
