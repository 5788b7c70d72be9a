package contacts_http_handler

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/init-pkg/contacts-uploader/domain/app"
	contact_upload_service "github.com/init-pkg/contacts-uploader/internal/app/contacts/service"
	excel_parser_service "github.com/init-pkg/contacts-uploader/internal/app/excel-parser/service"
	rabbitmq_client "github.com/init-pkg/contacts-uploader/internal/clients/rabbitmq"
	redis_client "github.com/init-pkg/contacts-uploader/internal/clients/redis"
	"github.com/init-pkg/contacts-uploader/internal/config"
	"github.com/init-pkg/contacts-uploader/internal/server"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeStore struct {
	calls    int
	inserted []app.ContactRow
	err      error
}

func (this *fakeStore) InsertMany(_ context.Context, rows []app.ContactRow) (int64, error) {
	this.calls++
	if this.err != nil {
		return 0, this.err
	}
	this.inserted = append(this.inserted, rows...)
	return int64(len(rows)), nil
}

func newTestApp(store *fakeStore) *fiber.App {
	var (
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg config.Config
	)
	cfg.App.Name = "contacts-uploader-test"
	cfg.Http.BodyLimit = 4 << 20

	parser := excel_parser_service.NewWithOptions(log, excel_parser_service.Options{})
	service := contact_upload_service.New(parser, store, rabbitmq_client.NopPublisher{}, redis_client.NopHistory{}, log)

	fiberApp := server.NewApp(&cfg, log)
	New(service, parser, log).Register(fiberApp)
	return fiberApp
}

func do(t *testing.T, fiberApp *fiber.App, req *http.Request) (int, http.Header, []byte) {
	t.Helper()
	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, body
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func postFile(t *testing.T, name string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/preview", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func contactsWorkbook(t *testing.T, n int) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []any{"ID", "Nombres", "Apellidos", "Código Área", "Celular", "Mensaje"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i := 0; i < n; i++ {
		row := []any{i + 1, "ana", fmt.Sprintf("GÓMEZ %d", i), "011", fmt.Sprintf("4444%04d", i), "hola"}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func dropZipEntry(t *testing.T, file []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(file), int64(len(file)))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range zr.File {
		if entry.Name == name {
			continue
		}
		r, err := entry.Open()
		require.NoError(t, err)
		w, err := zw.Create(entry.Name)
		require.NoError(t, err)
		_, err = io.Copy(w, r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUpload_EmptyOrMissingPayload(t *testing.T) {
	for _, body := range []string{"", "{}", `{"data":null}`, `{"data":[]}`} {
		store := &fakeStore{}
		status, _, resp := do(t, newTestApp(store), postJSON(body))

		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.JSONEq(t, `{"message":"No se proporcionaron datos"}`, string(resp), body)
		assert.Zero(t, store.calls, body)
	}
}

func TestUpload_MalformedJSON(t *testing.T) {
	store := &fakeStore{}
	status, _, resp := do(t, newTestApp(store), postJSON(`{"data":[`))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"El cuerpo de la solicitud no es JSON válido"}`, string(resp))
	assert.Zero(t, store.calls)
}

func TestUpload_InsertsAllRows(t *testing.T) {
	store := &fakeStore{}
	body := `{"data":[
		{"id":1,"firstName":"Juan","lastName":"Pérez","fullName":"Juan Pérez","areaCode":"011","phone":"1155551234","message":"hola"},
		{"firstName":"Ana","lastName":"Gómez","fullName":"Ana Gómez","areaCode":"0351","phone":"4221100","message":"chau"},
		{"firstName":"Luis","lastName":"Soto","fullName":"Luis Soto","areaCode":"0261","phone":"4300000","message":"turno","sentAt":"2024-03-05 14:07:09"}
	]}`

	status, _, resp := do(t, newTestApp(store), postJSON(body))

	require.Equal(t, http.StatusOK, status, string(resp))
	assert.JSONEq(t, `{"message":"Datos insertados exitosamente","affectedRows":3}`, string(resp))
	assert.Equal(t, 1, store.calls)
	require.Len(t, store.inserted, 3)
	assert.Equal(t, "Juan Pérez", store.inserted[0].FullName)
	require.NotNil(t, store.inserted[2].SentAt)
	assert.Equal(t, "2024-03-05 14:07:09", *store.inserted[2].SentAt)
}

func TestUpload_AcceptsAnyNumericId(t *testing.T) {
	store := &fakeStore{}

	status, _, resp := do(t, newTestApp(store), postJSON(`{"data":[{"id":1.5,"fullName":"Ana Gómez","areaCode":"011","phone":"1","message":"hola"}]}`))

	require.Equal(t, http.StatusOK, status, string(resp))
	assert.JSONEq(t, `{"message":"Datos insertados exitosamente","affectedRows":1}`, string(resp))
	require.Len(t, store.inserted, 1)
	require.NotNil(t, store.inserted[0].Id)
	assert.Equal(t, 1.5, *store.inserted[0].Id)
}

func TestUpload_DriverErrorIsPassedThrough(t *testing.T) {
	store := &fakeStore{err: errors.New("Error 1146 (42S02): Table 'crm.clientes' doesn't exist")}

	status, _, resp := do(t, newTestApp(store), postJSON(`{"data":[{"fullName":"Ana Gómez","areaCode":"011","phone":"1","message":"hola"}]}`))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"Error al insertar datos en la base de datos","error":"Error 1146 (42S02): Table 'crm.clientes' doesn't exist"}`, string(resp))
}

func TestPreview_ParsesWorkbook(t *testing.T) {
	store := &fakeStore{}

	status, _, resp := do(t, newTestApp(store), postFile(t, "contactos.xlsx", contactsWorkbook(t, 7)))

	require.Equal(t, http.StatusOK, status, string(resp))
	var body struct {
		Message string           `json:"message"`
		Rows    []app.ContactRow `json:"rows"`
		Preview []app.ContactRow `json:"preview"`
		Total   int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp, &body))
	assert.Equal(t, app.MessageParsed, body.Message)
	assert.Equal(t, 7, body.Total)
	assert.Len(t, body.Rows, 7)
	assert.Len(t, body.Preview, app.PreviewSize)
	assert.Equal(t, "Ana Gómez 0", body.Rows[0].FullName)
	assert.Zero(t, store.calls)
}

func TestPreview_MalformedWorkbookNeverInserts(t *testing.T) {
	store := &fakeStore{}

	status, _, resp := do(t, newTestApp(store), postFile(t, "contactos.xlsx", []byte("not a workbook")))

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp, &body))
	assert.Equal(t, app.MessageParseFailed, body["message"])
	assert.Contains(t, body["error"], app.ErrInvalidWorkbook.Error())
	assert.Zero(t, store.calls)
}

func TestPreview_MissingSheetNeverInserts(t *testing.T) {
	store := &fakeStore{}
	file := dropZipEntry(t, contactsWorkbook(t, 2), "xl/worksheets/sheet1.xml")

	status, _, resp := do(t, newTestApp(store), postFile(t, "contactos.xlsx", file))

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp, &body))
	assert.Equal(t, app.MessageParseFailed, body["message"])
	assert.Contains(t, body["error"], app.ErrSheetNotFound.Error())
	assert.Zero(t, store.calls)
}

func TestPreview_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/preview", strings.NewReader(""))
	status, _, _ := do(t, newTestApp(&fakeStore{}), req)

	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTemplate_Download(t *testing.T) {
	status, header, body := do(t, newTestApp(&fakeStore{}), httptest.NewRequest(http.MethodGet, "/api/template", nil))

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, xlsxContentType, header.Get("Content-Type"))
	assert.Contains(t, header.Get("Content-Disposition"), "plantilla-contactos.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()
	grid, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	assert.Equal(t, app.ContactColumns, grid[0])
}

func TestPage(t *testing.T) {
	status, header, body := do(t, newTestApp(&fakeStore{}), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Carga de Archivo Excel")
	assert.Contains(t, string(body), "/api/upload")
}

func TestUploads_EmptyHistory(t *testing.T) {
	status, _, body := do(t, newTestApp(&fakeStore{}), httptest.NewRequest(http.MethodGet, "/api/uploads?limit=5", nil))

	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"uploads":[]}`, string(body))
}
