package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/cardbank/internal/api"
	"github.com/mcoot/cardbank/internal/api/response"
	"github.com/mcoot/cardbank/internal/device"
	"github.com/mcoot/cardbank/internal/services/engine"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a terminal session from a script",
		Long: `Run one terminal session. Input is read from a script, one step per line:

  up | down | left | right [n]   deflect the joystick n times
  press [n]                      press the joystick button n times
  scan 04 A2 3F               present a token to the reader

Lines starting with # are comments. Use --script - to read steps from stdin
as they are typed. The display is drawn on stderr; when the script runs out
the final ledger is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newApp(cfg.NoDelay)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			script, err := openScript(ctx, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if cfg.Listen != "" {
				server := api.NewServer(api.NewRouter(api.RouterConfig{
					Logger:      logger,
					Storage:     app.Storage,
					StorageType: cfg.Storage,
				}), serverConfig(cfg.Listen), logger)
				go func() {
					if err := server.Start(); err != nil {
						logger.Error("status API stopped", slog.String("error", err.Error()))
					}
				}()
				defer func() { _ = server.Shutdown(context.Background()) }()
			}

			display := device.NewConsole(cmd.ErrOrStderr(), app.Terminal.DisplayRows, app.Terminal.DisplayCols)
			controller := app.NewController(engine.Devices{
				Joystick: script,
				Reader:   script,
				Display:  display,
				Hook:     script.Hook,
			})

			err = controller.Run(ctx)
			switch {
			case errors.Is(err, device.ErrScriptExhausted):
				logger.Info("script finished")
			case errors.Is(err, context.Canceled):
				logger.Info("session interrupted")
			default:
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(response.SessionFromModel(controller.Snapshot()))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Script, "script", cfg.Script, "Script file, or - for stdin (env: CARDBANK_SCRIPT)")
	cmd.Flags().StringVar(&cfg.Listen, "listen", cfg.Listen, "Also serve the status API on this address (env: CARDBANK_LISTEN)")
	cmd.Flags().BoolVar(&cfg.NoDelay, "no-delay", cfg.NoDelay, "Skip display delays (env: CARDBANK_NO_DELAY)")

	return cmd
}

// openScript loads a script file whole, or streams stdin line by line
func openScript(ctx context.Context, stdin io.Reader) (*device.Script, error) {
	if cfg.Script == "-" {
		return device.StreamScript(ctx, stdin, logger), nil
	}

	f, err := os.Open(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	return device.LoadScript(f)
}

func serverConfig(addr string) api.ServerConfig {
	serverCfg := api.DefaultServerConfig()
	serverCfg.Addr = addr
	return serverCfg
}
