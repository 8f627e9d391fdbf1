package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roams-app/roams-server/internal/app"
	"github.com/roams-app/roams-server/internal/config"
	"github.com/roams-app/roams-server/internal/log"
)

func newServeCmd() *cobra.Command {
	var flagAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and realtime server",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := log.New("info")

			cfg, path, err := config.Load(bootLogger, flagConfig)
			if err != nil {
				return err
			}
			if flagAddr != "" {
				cfg.Addr = flagAddr
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting roams server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(cfg, logger)
			if err != nil {
				return err
			}

			if err := application.Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address, overrides config")

	return cmd
}
