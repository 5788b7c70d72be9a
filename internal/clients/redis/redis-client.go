package redis_client

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/internal/config"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// History keeps the last N upload batches in a capped Redis list, newest first.
type History struct {
	rdb  redis.Cmdable
	key  string
	size int64
}

var _ app.UploadHistory = &History{}

// New returns a no-op history when no Redis address is configured.
func New(cfg *config.Config, log *slog.Logger) app.UploadHistory {
	var rc = cfg.Infrastructure.Redis
	if rc.Addr == "" {
		log.Info("redis disabled, upload history will not be kept")
		return NopHistory{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.Db,
	})

	return NewHistory(rdb, rc.HistoryKey, rc.HistorySize)
}

func NewHistory(rdb redis.Cmdable, key string, size int64) *History {
	if size <= 0 {
		size = 50
	}
	return &History{rdb: rdb, key: key, size: size}
}

func (this *History) Record(ctx context.Context, batch app.UploadBatch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	pipe := this.rdb.TxPipeline()
	pipe.LPush(ctx, this.key, data)
	pipe.LTrim(ctx, this.key, 0, this.size-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record upload %s: %w", batch.BatchId, err)
	}

	return nil
}

func (this *History) Recent(ctx context.Context, limit int) ([]app.UploadBatch, error) {
	raw, err := this.rdb.LRange(ctx, this.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read upload history: %w", err)
	}

	batches := make([]app.UploadBatch, 0, len(raw))
	for _, item := range raw {
		var batch app.UploadBatch
		if err := json.Unmarshal([]byte(item), &batch); err != nil {
			continue
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

func (this *History) Close() error {
	if closer, ok := this.rdb.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type NopHistory struct{}

func (NopHistory) Record(context.Context, app.UploadBatch) error { return nil }

func (NopHistory) Recent(context.Context, int) ([]app.UploadBatch, error) {
	return []app.UploadBatch{}, nil
}
