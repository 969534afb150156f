package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/cardbank/internal/api"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the status API over the session mirror",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newApp(false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			server := api.NewServer(api.NewRouter(api.RouterConfig{
				Logger:      logger,
				Storage:     app.Storage,
				StorageType: cfg.Storage,
			}), serverConfig(listen), logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			// Wait for shutdown or error
			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutdown signal received")
				if err := server.Shutdown(context.Background()); err != nil {
					logger.Error("shutdown error", slog.String("error", err.Error()))
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", getEnvOrDefault("CARDBANK_LISTEN", ":8080"), "Listen address (env: CARDBANK_LISTEN)")

	return cmd
}
