package contact_uploader

import (
	"context"
	"fmt"
	"time"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/domain/dtos"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
)

// ApiError is a non 2xx answer from the upload endpoint.
type ApiError struct {
	Status  int
	Message string
	Detail  string
}

func (this *ApiError) Error() string {
	if this.Detail != "" {
		return fmt.Sprintf("%d %s: %s", this.Status, this.Message, this.Detail)
	}
	return fmt.Sprintf("%d %s", this.Status, this.Message)
}

type ApiClient struct {
	http *resty.Client
}

func NewApiClient(baseUrl string, timeout time.Duration) *ApiClient {
	client := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")

	return &ApiClient{http: client}
}

func (this *ApiClient) Upload(ctx context.Context, rows []app.ContactRow) (*dtos.UploadResponse, error) {
	var (
		ok   dtos.UploadResponse
		fail dtos.ErrorResponse
	)

	resp, err := this.http.R().
		SetContext(ctx).
		SetBody(dtos.UploadRequest{Data: rows}).
		SetResult(&ok).
		SetError(&fail).
		Post("/api/upload")
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	if resp.IsError() {
		return nil, &ApiError{Status: resp.StatusCode(), Message: fail.Message, Detail: fail.Error}
	}

	return &ok, nil
}
