package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	App            App            `yaml:"app"`
	Http           Http           `yaml:"http"`
	Log            Log            `yaml:"log"`
	Infrastructure Infrastructure `yaml:"infrastructure"`
	Parser         Parser         `yaml:"parser"`
	Clients        Clients        `yaml:"clients"`
}

type App struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"contacts-uploader"`
	Env  string `yaml:"env" env:"APP_ENV" env-default:"local"`
}

type Http struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"HTTP_PORT" env-default:"3000"`
	// BodyLimit bounds uploaded workbooks and JSON payloads, in bytes.
	BodyLimit       int           `yaml:"body_limit" env:"HTTP_BODY_LIMIT" env-default:"16777216"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func (this Http) Addr() string {
	return fmt.Sprintf("%s:%d", this.Host, this.Port)
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Infrastructure struct {
	Db       Db       `yaml:"db"`
	RabbitMQ RabbitMQ `yaml:"rabbitmq"`
	Redis    Redis    `yaml:"redis"`
}

type Db struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"127.0.0.1"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	User     string `yaml:"user" env:"DB_USER" env-default:"root"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"crm"`
	// Path is the database file for the sqlite driver.
	Path     string `yaml:"path" env:"DB_PATH" env-default:"contacts.db"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"disable"`
	Table    string `yaml:"table" env:"DB_TABLE" env-default:"clientes"`
	MaxOpen  int    `yaml:"max_open" env:"DB_MAX_OPEN" env-default:"10"`
	MaxIdle  int    `yaml:"max_idle" env:"DB_MAX_IDLE" env-default:"5"`
	LogLevel string `yaml:"log_level" env:"DB_LOG_LEVEL" env-default:"warn"`
}

type RabbitMQ struct {
	// Url empty disables event publishing.
	Url        string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"contacts"`
	RoutingKey string `yaml:"routing_key" env:"RABBITMQ_ROUTING_KEY" env-default:"contacts.imported"`
}

type Redis struct {
	// Addr empty disables upload history.
	Addr        string `yaml:"addr" env:"REDIS_ADDR"`
	Password    string `yaml:"password" env:"REDIS_PASSWORD"`
	Db          int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	HistoryKey  string `yaml:"history_key" env:"REDIS_HISTORY_KEY" env-default:"contacts:uploads"`
	HistorySize int64  `yaml:"history_size" env:"REDIS_HISTORY_SIZE" env-default:"50"`
}

type Parser struct {
	// StampSentAt fills ContactRow.SentAt with the parse time.
	StampSentAt bool `yaml:"stamp_sent_at" env:"PARSER_STAMP_SENT_AT" env-default:"false"`
}

type Clients struct {
	Api Api `yaml:"api"`
}

type Api struct {
	Url     string        `yaml:"url" env:"API_URL" env-default:"http://localhost:3000"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"60s"`
}

// Load reads .env, then the YAML file at CONFIG_PATH (if present), then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var (
		cfg  Config
		path = os.Getenv("CONFIG_PATH")
	)
	if path == "" {
		path = defaultConfigPath
	}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, &cfg)
	} else if errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = statErr
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (this *Config) validate() error {
	switch this.Infrastructure.Db.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported db driver %q", this.Infrastructure.Db.Driver)
	}
	if this.Infrastructure.Db.Table == "" {
		return errors.New("config: db table is required")
	}
	return nil
}
