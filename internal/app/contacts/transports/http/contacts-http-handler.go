package contacts_http_handler

import (
	"bytes"
	_ "embed"
	"io"
	"log/slog"
	"strconv"

	"github.com/init-pkg/contacts-uploader/domain/app"
	"github.com/init-pkg/contacts-uploader/domain/dtos"
	"github.com/init-pkg/contacts-uploader/domain/errs"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

//go:embed web/index.html
var indexPage []byte

type ContactsHttpHandler struct {
	service   app.ContactUploadService
	templates app.ContactTemplateWriter
	validate  *validator.Validate
	log       *slog.Logger
}

func New(service app.ContactUploadService, templates app.ContactTemplateWriter, log *slog.Logger) *ContactsHttpHandler {
	return &ContactsHttpHandler{
		service:   service,
		templates: templates,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log,
	}
}

func (this *ContactsHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Get("/", this.page)

	var api = mainApp.Group("/api")
	api.Post("/upload", this.upload)
	api.Post("/preview", this.preview)
	api.Get("/template", this.template)
	api.Get("/uploads", this.uploads)
}

func (this *ContactsHttpHandler) page(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexPage)
}

// upload godoc
// @Summary      Bulk insert contacts
// @Description  Inserts every row of the payload with a single multi-row INSERT.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request  body      dtos.UploadRequest  true  "Rows to insert"
// @Success      200      {object}  dtos.UploadResponse
// @Failure      400      {object}  dtos.ErrorResponse
// @Failure      500      {object}  dtos.ErrorResponse
// @Router       /upload [post]
func (this *ContactsHttpHandler) upload(c fiber.Ctx) error {
	var req dtos.UploadRequest
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return errs.BadRequest(app.MessageInvalidPayload, err)
		}
	}
	if err := this.validate.Struct(&req); err != nil {
		return errs.BadRequest(app.MessageNoData, nil)
	}

	res, err := this.service.Upload(c.Context(), req.Data)
	if err != nil {
		return err
	}

	return c.JSON(dtos.UploadResponse{
		Message:      app.MessageInserted,
		AffectedRows: res.AffectedRows,
	})
}

// preview godoc
// @Summary      Parse a workbook
// @Description  Parses the first sheet of an xlsx file and returns the rows and a preview of the first five.
// @Tags         contacts
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Excel workbook"
// @Success      200   {object}  dtos.PreviewResponse
// @Failure      400   {object}  dtos.ErrorResponse
// @Failure      422   {object}  dtos.ErrorResponse
// @Router       /preview [post]
func (this *ContactsHttpHandler) preview(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errs.BadRequest(app.MessageNoData, err)
	}

	f, err := fh.Open()
	if err != nil {
		return errs.Internal(app.MessageParseFailed, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errs.Internal(app.MessageParseFailed, err)
	}

	res, appErr := this.service.Preview(c.Context(), data)
	if appErr != nil {
		this.log.Warn("workbook rejected", "file", fh.Filename, "error", appErr)
		return appErr
	}

	return c.JSON(dtos.PreviewResponse{
		Message: app.MessageParsed,
		Rows:    res.Rows,
		Preview: res.Preview,
		Total:   res.Total,
	})
}

// template godoc
// @Summary      Download the import template
// @Tags         contacts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /template [get]
func (this *ContactsHttpHandler) template(c fiber.Ctx) error {
	data, err := this.templates.Template()
	if err != nil {
		return errs.Internal(app.MessageParseFailed, err)
	}

	c.Attachment("plantilla-contactos.xlsx")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(data)
}

// uploads godoc
// @Summary      Recent uploads
// @Tags         contacts
// @Produce      json
// @Param        limit  query     int  false  "Max batches to return"
// @Success      200    {object}  dtos.UploadsResponse
// @Failure      500    {object}  dtos.ErrorResponse
// @Router       /uploads [get]
func (this *ContactsHttpHandler) uploads(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	batches, err := this.service.RecentUploads(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(dtos.UploadsResponse{Uploads: batches})
}
