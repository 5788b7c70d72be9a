package contact_uploader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/domain/dtos"
)

var (
	ErrNothingToUpload = errors.New("no hay datos para subir")
	ErrCancelled       = errors.New("carga cancelada")
)

type Uploader struct {
	parser app.ContactParser
	client *ApiClient
	log    *slog.Logger
}

func New(parser app.ContactParser, client *ApiClient, log *slog.Logger) *Uploader {
	return &Uploader{parser: parser, client: client, log: log}
}

type RunOptions struct {
	In        io.Reader
	Out       io.Writer
	AssumeYes bool
}

// Run parses file, prints the preview and, once confirmed, sends every row to the API.
// Nothing is sent when parsing fails or the sheet has no rows.
func (this *Uploader) Run(ctx context.Context, file []byte, opts RunOptions) (*dtos.UploadResponse, error) {
	rows, err := this.parser.Parse(ctx, file)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNothingToUpload
	}

	if err := PrintPreview(opts.Out, rows); err != nil {
		return nil, err
	}

	if !opts.AssumeYes {
		ok, err := confirm(opts.In, opts.Out, len(rows))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
	}

	res, err := this.client.Upload(ctx, rows)
	if err != nil {
		return nil, err
	}

	this.log.Info("contacts uploaded", "affectedRows", res.AffectedRows)
	return res, nil
}

func PrintPreview(out io.Writer, rows []app.ContactRow) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(app.ContactColumns, "\t"))
	for _, row := range app.Preview(rows) {
		var id string
		if row.Id != nil {
			id = fmt.Sprint(*row.Id)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", id, row.FirstName, row.LastName, row.AreaCode, row.Phone, row.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%d filas en total\n", len(rows))
	return err
}

func confirm(in io.Reader, out io.Writer, n int) (bool, error) {
	fmt.Fprintf(out, "¿Subir %d filas? [s/N]: ", n)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
