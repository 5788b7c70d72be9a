package main

import (
	"context"
	"fmt"
	"os"

	contact_store "github.com/init-pkg/contacts-uploader/internal/app/contacts/store"
	excel_parser_service "github.com/init-pkg/contacts-uploader/internal/app/excel-parser/service"
	db_client "github.com/init-pkg/contacts-uploader/internal/clients/db"
	"github.com/init-pkg/contacts-uploader/internal/config"
	"github.com/init-pkg/contacts-uploader/internal/logger"
)

// seed inserts an Excel contact sheet straight into the database, bypassing the HTTP API.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: seed <archivo.xlsx>")
		os.Exit(2)
	}

	var (
		cfg = config.MustLoad()
		log = logger.New(cfg)
		ctx = context.Background()
	)

	db, err := db_client.New(cfg, log)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	file, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Error("failed to read file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	rows, err := excel_parser_service.New(cfg, log).Parse(ctx, file)
	if err != nil {
		log.Error("failed to parse workbook", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		log.Warn("workbook has no rows, nothing to seed", "path", os.Args[1])
		return
	}

	affected, err := contact_store.New(db, cfg, log).InsertMany(ctx, rows)
	if err != nil {
		log.Error("failed to insert contacts", "error", err)
		os.Exit(1)
	}

	log.Info("seed completed", "affectedRows", affected)
}
