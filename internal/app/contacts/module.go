package contacts_module

import (
	"github.com/init-pkg/contacts-uploader/domain/app"
	contact_upload_service "github.com/init-pkg/contacts-uploader/internal/app/contacts/service"
	contact_store "github.com/init-pkg/contacts-uploader/internal/app/contacts/store"
	contacts_http_handler "github.com/init-pkg/contacts-uploader/internal/app/contacts/transports/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(contact_store.New, fx.As(new(app.ContactStore))),
			fx.Annotate(contact_upload_service.New, fx.As(new(app.ContactUploadService))),
			contacts_http_handler.New,
		),
		fx.Invoke(func(mainApp *fiber.App, handler *contacts_http_handler.ContactsHttpHandler) {
			handler.Register(mainApp)
		}),
	)
}
