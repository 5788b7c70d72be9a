package app

import (
	"context"

	"github.com/init-pkg/contacts-uploader/domain/errs"
)

type ContactParser interface {
	Parse(ctx context.Context, file []byte) ([]ContactRow, error)
}

// ContactStore persists rows with a single bulk insert.
type ContactStore interface {
	InsertMany(ctx context.Context, rows []ContactRow) (int64, error)
}

// ContactEventPublisher announces imported batches to downstream consumers.
type ContactEventPublisher interface {
	PublishImported(ctx context.Context, batch UploadBatch) error
}

type UploadHistory interface {
	Record(ctx context.Context, batch UploadBatch) error
	Recent(ctx context.Context, limit int) ([]UploadBatch, error)
}

type ContactUploadService interface {
	Preview(ctx context.Context, file []byte) (*ParseContactsResult, errs.Error)
	Upload(ctx context.Context, rows []ContactRow) (*UploadResult, errs.Error)
	RecentUploads(ctx context.Context, limit int) ([]UploadBatch, errs.Error)
}

// ContactTemplateWriter renders an empty workbook with the expected header row.
type ContactTemplateWriter interface {
	Template() ([]byte, error)
}
