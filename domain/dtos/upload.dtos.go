package dtos

import "github.com/init-pkg/contacts-uploader/domain/app"

type UploadRequest struct {
	Data []app.ContactRow `json:"data" validate:"required,min=1"`
}

type UploadResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

type PreviewResponse struct {
	Message string           `json:"message"`
	Rows    []app.ContactRow `json:"rows"`
	Preview []app.ContactRow `json:"preview"`
	Total   int              `json:"total"`
}

type UploadsResponse struct {
	Uploads []app.UploadBatch `json:"uploads"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
