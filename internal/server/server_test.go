package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/init-pkg/contacts-uploader/domain/errs"
	"github.com/init-pkg/contacts-uploader/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	var cfg config.Config
	cfg.App.Name = "contacts-uploader-test"
	cfg.Http.BodyLimit = 1 << 20
	return NewApp(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doGet(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/bad", func(c fiber.Ctx) error {
		return errs.BadRequest("No se proporcionaron datos", nil)
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return errs.Internal("Error al insertar datos en la base de datos", errors.New("Error 2006: MySQL server has gone away"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})

	status, body := doGet(t, app, "/bad")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"No se proporcionaron datos"}`, body)

	status, body = doGet(t, app, "/internal")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"Error al insertar datos en la base de datos","error":"Error 2006: MySQL server has gone away"}`, body)

	status, body = doGet(t, app, "/plain")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"Internal Server Error","error":"boom"}`, body)

	status, _ = doGet(t, app, "/panic")
	assert.Equal(t, http.StatusInternalServerError, status)

	status, _ = doGet(t, app, "/missing")
	assert.Equal(t, http.StatusNotFound, status)
}
