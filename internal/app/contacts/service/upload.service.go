package contact_upload_service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/domain/errs"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type UploadService struct {
	parser    app.ContactParser
	store     app.ContactStore
	publisher app.ContactEventPublisher
	history   app.UploadHistory
	log       *slog.Logger
	now       func() time.Time
}

var _ app.ContactUploadService = &UploadService{}

func New(
	parser app.ContactParser,
	store app.ContactStore,
	publisher app.ContactEventPublisher,
	history app.UploadHistory,
	log *slog.Logger,
) *UploadService {
	return &UploadService{
		parser:    parser,
		store:     store,
		publisher: publisher,
		history:   history,
		log:       log,
		now:       time.Now,
	}
}

func (this *UploadService) Preview(ctx context.Context, file []byte) (*app.ParseContactsResult, errs.Error) {
	rows, err := this.parser.Parse(ctx, file)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{
			Status:  http.StatusUnprocessableEntity,
			Message: app.MessageParseFailed,
		})
	}

	return &app.ParseContactsResult{
		Rows:    rows,
		Preview: app.Preview(rows),
		Total:   len(rows),
	}, nil
}

// Upload inserts rows in one statement. Event publishing and history are best effort and
// never turn a successful insert into a failure.
func (this *UploadService) Upload(ctx context.Context, rows []app.ContactRow) (*app.UploadResult, errs.Error) {
	if len(rows) == 0 {
		return nil, errs.BadRequest(app.MessageNoData, nil)
	}

	affected, err := this.store.InsertMany(ctx, rows)
	if err != nil {
		this.log.ErrorContext(ctx, "Error al insertar datos", "rows", len(rows), "error", err)
		return nil, errs.Internal(app.MessageInsertFailed, err)
	}

	var batch = app.UploadBatch{
		BatchId:      uuid.NewString(),
		AffectedRows: affected,
		UploadedAt:   this.now().UTC(),
	}

	if err := this.history.Record(ctx, batch); err != nil {
		this.log.WarnContext(ctx, "failed to record upload history", "batchId", batch.BatchId, "error", err)
	}
	if err := this.publisher.PublishImported(ctx, batch); err != nil {
		this.log.WarnContext(ctx, "failed to publish contacts imported event", "batchId", batch.BatchId, "error", err)
	}

	this.log.InfoContext(ctx, "contacts uploaded", "batchId", batch.BatchId, "affectedRows", affected)

	return &app.UploadResult{
		BatchId:      batch.BatchId,
		AffectedRows: affected,
	}, nil
}

func (this *UploadService) RecentUploads(ctx context.Context, limit int) ([]app.UploadBatch, errs.Error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	batches, err := this.history.Recent(ctx, limit)
	if err != nil {
		return nil, errs.Internal(app.MessageHistoryFailed, err)
	}
	if batches == nil {
		batches = []app.UploadBatch{}
	}

	return batches, nil
}
