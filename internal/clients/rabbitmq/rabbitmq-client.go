package rabbitmq_client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/internal/config"

	json "github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ContactsImportedEvent is the body published after a successful upload.
type ContactsImportedEvent struct {
	BatchId      string    `json:"batch_id"`
	AffectedRows int64     `json:"affected_rows"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type Publisher struct {
	url        string
	exchange   string
	routingKey string
	log        *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ app.ContactEventPublisher = &Publisher{}

// New returns a no-op publisher when no broker URL is configured.
func New(cfg *config.Config, log *slog.Logger) app.ContactEventPublisher {
	var rc = cfg.Infrastructure.RabbitMQ
	if rc.Url == "" {
		log.Info("rabbitmq disabled, contacts events will not be published")
		return NopPublisher{}
	}

	return &Publisher{
		url:        rc.Url,
		exchange:   rc.Exchange,
		routingKey: rc.RoutingKey,
		log:        log,
	}
}

func (this *Publisher) PublishImported(ctx context.Context, batch app.UploadBatch) error {
	body, err := json.Marshal(ContactsImportedEvent{
		BatchId:      batch.BatchId,
		AffectedRows: batch.AffectedRows,
		UploadedAt:   batch.UploadedAt,
	})
	if err != nil {
		return err
	}

	ch, err := this.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, this.exchange, this.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    batch.BatchId,
		Timestamp:    batch.UploadedAt,
		Body:         body,
	})
	if err != nil {
		this.reset()
		return fmt.Errorf("publish %s: %w", this.routingKey, err)
	}

	return nil
}

// channel lazily dials the broker so the service starts without it.
func (this *Publisher) channel() (*amqp.Channel, error) {
	this.mu.Lock()
	defer this.mu.Unlock()

	if this.ch != nil && !this.ch.IsClosed() {
		return this.ch, nil
	}

	if this.conn == nil || this.conn.IsClosed() {
		conn, err := amqp.Dial(this.url)
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		this.conn = conn
	}

	ch, err := this.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(this.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", this.exchange, err)
	}

	this.ch = ch
	return ch, nil
}

func (this *Publisher) reset() {
	this.mu.Lock()
	defer this.mu.Unlock()

	if this.ch != nil {
		this.ch.Close()
		this.ch = nil
	}
}

func (this *Publisher) Close() error {
	this.reset()

	this.mu.Lock()
	defer this.mu.Unlock()

	if this.conn != nil {
		err := this.conn.Close()
		this.conn = nil
		return err
	}
	return nil
}

type NopPublisher struct{}

func (NopPublisher) PublishImported(context.Context, app.UploadBatch) error { return nil }
