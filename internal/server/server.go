package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/init-pkg/contacts-uploader/domain/dtos"
	"github.com/init-pkg/contacts-uploader/domain/errs"
	"github.com/init-pkg/contacts-uploader/internal/config"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func NewApp(cfg *config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Http.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(accessLog(log))

	return app
}

// ErrorHandler renders errs.Error as {message} for client errors and {message, error} otherwise.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var appErr errs.Error
		if errors.As(err, &appErr) {
			var body = dtos.ErrorResponse{Message: appErr.Message()}
			if appErr.Status() >= http.StatusInternalServerError || appErr.Status() == http.StatusUnprocessableEntity {
				body.Error = errs.Detail(appErr)
			}
			return c.Status(appErr.Status()).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(dtos.ErrorResponse{Message: fiberErr.Message})
		}

		log.Error("unhandled error", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(dtos.ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
			Error:   err.Error(),
		})
	}
}

func accessLog(log *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var appErr errs.Error
			var fiberErr *fiber.Error
			switch {
			case errors.As(err, &appErr):
				status = appErr.Status()
			case errors.As(err, &fiberErr):
				status = fiberErr.Code
			default:
				status = http.StatusInternalServerError
			}
		}

		log.Info("http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String())

		return err
	}
}
