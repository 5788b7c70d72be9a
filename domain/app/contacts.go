package app

import (
	"errors"
	"time"
)

// SentAtLayout is the text format used for ContactRow.SentAt.
const SentAtLayout = "2006-01-02 15:04:05"

var (
	ErrInvalidWorkbook = errors.New("el archivo no es un libro de Excel válido")
	ErrSheetNotFound   = errors.New("no se encontró la hoja de cálculo")
)

// ContactColumns is the expected header row, in column order.
var ContactColumns = []string{"ID", "Nombres", "Apellidos", "Código Área", "Celular", "Mensaje"}

// PreviewSize is the number of rows shown before an upload is confirmed.
const PreviewSize = 5

// ContactRow is one contact record extracted from the spreadsheet.
// Id is informational only and is never inserted.
type ContactRow struct {
	Id        *float64 `json:"id,omitempty"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	FullName  string   `json:"fullName"`
	AreaCode  string   `json:"areaCode"`
	Phone     string   `json:"phone"`
	Message   string   `json:"message"`
	SentAt    *string  `json:"sentAt,omitempty"`
}

type ParseContactsResult struct {
	Rows    []ContactRow `json:"rows"`
	Preview []ContactRow `json:"preview"`
	Total   int          `json:"total"`
}

type UploadResult struct {
	BatchId      string `json:"batchId"`
	AffectedRows int64  `json:"affectedRows"`
}

// UploadBatch is a summary of one successful upload.
type UploadBatch struct {
	BatchId      string    `json:"batchId"`
	AffectedRows int64     `json:"affectedRows"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// Preview returns at most PreviewSize leading rows.
func Preview(rows []ContactRow) []ContactRow {
	if len(rows) > PreviewSize {
		return rows[:PreviewSize]
	}
	return rows
}
