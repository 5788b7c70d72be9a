package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	contact_uploader "github.com/init-pkg/contacts-uploader/internal/app/contacts/uploader"
	excel_parser_service "github.com/init-pkg/contacts-uploader/internal/app/excel-parser/service"
	"github.com/init-pkg/contacts-uploader/internal/config"
	"github.com/init-pkg/contacts-uploader/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiUrl    string
		timeout   time.Duration
		assumeYes bool
		stamp     bool
	)

	cmd := &cobra.Command{
		Use:          "uploader <archivo.xlsx>",
		Short:        "Preview an Excel contact sheet and upload it to the contacts API",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api") {
				cfg.Clients.Api.Url = apiUrl
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Clients.Api.Timeout = timeout
			}

			file, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var (
				log    = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, "text")
				parser = excel_parser_service.NewWithOptions(log, excel_parser_service.Options{
					StampSentAt: stamp || cfg.Parser.StampSentAt,
				})
				client   = contact_uploader.NewApiClient(cfg.Clients.Api.Url, cfg.Clients.Api.Timeout)
				uploader = contact_uploader.New(parser, client, log)
			)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			res, err := uploader.Run(ctx, file, contact_uploader.RunOptions{
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				AssumeYes: assumeYes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d filas)\n", res.Message, res.AffectedRows)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiUrl, "api", "", "base URL of the contacts API (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "request timeout (default from config)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "upload without asking for confirmation")
	cmd.Flags().BoolVar(&stamp, "stamp", false, "set the send date of every row to now")

	return cmd
}
