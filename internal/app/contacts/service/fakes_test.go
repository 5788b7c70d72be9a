package contact_upload_service

import (
	"context"
	"sync"

	"github.com/init-pkg/contacts-uploader/domain/app"
)

type fakeParser struct {
	rows []app.ContactRow
	err  error
}

func (this *fakeParser) Parse(_ context.Context, _ []byte) ([]app.ContactRow, error) {
	return this.rows, this.err
}

type fakeStore struct {
	mu       sync.Mutex
	calls    int
	inserted []app.ContactRow
	err      error
}

func (this *fakeStore) InsertMany(_ context.Context, rows []app.ContactRow) (int64, error) {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.calls++
	if this.err != nil {
		return 0, this.err
	}
	this.inserted = append(this.inserted, rows...)
	return int64(len(rows)), nil
}

type fakePublisher struct {
	published []app.UploadBatch
	err       error
}

func (this *fakePublisher) PublishImported(_ context.Context, batch app.UploadBatch) error {
	if this.err != nil {
		return this.err
	}
	this.published = append(this.published, batch)
	return nil
}

type fakeHistory struct {
	batches   []app.UploadBatch
	lastLimit int
	err       error
}

func (this *fakeHistory) Record(_ context.Context, batch app.UploadBatch) error {
	if this.err != nil {
		return this.err
	}
	this.batches = append([]app.UploadBatch{batch}, this.batches...)
	return nil
}

func (this *fakeHistory) Recent(_ context.Context, limit int) ([]app.UploadBatch, error) {
	this.lastLimit = limit
	if this.err != nil {
		return nil, this.err
	}
	if len(this.batches) > limit {
		return this.batches[:limit], nil
	}
	return this.batches, nil
}
