package bootstrap

import (
	contacts_module "github.com/init-pkg/contacts-uploader/internal/app/contacts"
	excel_parser_module "github.com/init-pkg/contacts-uploader/internal/app/excel-parser"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		excel_parser_module.Register(),
		contacts_module.Register(),
	)
}
