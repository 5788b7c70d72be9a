package excel_parser_service

import (
	"context"
	"log/slog"
	"time"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/internal/config"
)

type Options struct {
	// StampSentAt fills SentAt on every row with the parse time.
	StampSentAt bool
	Now         func() time.Time
}

type ExcelParserService struct {
	log  *slog.Logger
	opts Options
}

var (
	_ app.ContactParser         = &ExcelParserService{}
	_ app.ContactTemplateWriter = &ExcelParserService{}
)

func New(cfg *config.Config, log *slog.Logger) *ExcelParserService {
	return NewWithOptions(log, Options{StampSentAt: cfg.Parser.StampSentAt})
}

func NewWithOptions(log *slog.Logger, opts Options) *ExcelParserService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ExcelParserService{log, opts}
}

func (this *ExcelParserService) Parse(ctx context.Context, file []byte) ([]app.ContactRow, error) {
	return this.parse(ctx, file)
}
