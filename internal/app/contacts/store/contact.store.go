package contact_store

import (
	"context"
	"log/slog"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/internal/config"

	"gorm.io/gorm"
)

const sentAtColumn = "fecha_envio"

// contactRecord mirrors the target table. Only the listed columns are written.
type contactRecord struct {
	Id         uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre     string  `gorm:"column:nombre"`
	CodigoArea string  `gorm:"column:codigo_area"`
	Telefono   string  `gorm:"column:telefono"`
	Mensaje    string  `gorm:"column:mensaje"`
	FechaEnvio *string `gorm:"column:fecha_envio"`
}

type GormContactStore struct {
	db    *gorm.DB
	table string
	log   *slog.Logger
}

var _ app.ContactStore = &GormContactStore{}

func New(db *gorm.DB, cfg *config.Config, log *slog.Logger) *GormContactStore {
	return NewWithTable(db, cfg.Infrastructure.Db.Table, log)
}

func NewWithTable(db *gorm.DB, table string, log *slog.Logger) *GormContactStore {
	return &GormContactStore{db: db, table: table, log: log}
}

// InsertMany writes all rows with one multi-row INSERT. fecha_envio is only part of the
// column list when at least one row carries a send date.
func (this *GormContactStore) InsertMany(ctx context.Context, rows []app.ContactRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var (
		records    = make([]contactRecord, len(rows))
		withSentAt bool
	)
	for i, row := range rows {
		records[i] = toRecord(row)
		if row.SentAt != nil {
			withSentAt = true
		}
	}

	var q = this.db.WithContext(ctx).Table(this.table)
	if !withSentAt {
		q = q.Omit(sentAtColumn)
	}

	res := q.Create(&records)
	if res.Error != nil {
		this.log.ErrorContext(ctx, "bulk insert failed", "table", this.table, "rows", len(rows), "error", res.Error)
		return 0, res.Error
	}

	this.log.InfoContext(ctx, "bulk insert completed", "table", this.table, "affectedRows", res.RowsAffected)
	return res.RowsAffected, nil
}

func toRecord(row app.ContactRow) contactRecord {
	return contactRecord{
		Nombre:     row.FullName,
		CodigoArea: row.AreaCode,
		Telefono:   row.Phone,
		Mensaje:    row.Message,
		FechaEnvio: row.SentAt,
	}
}
