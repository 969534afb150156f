package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/cardbank/internal/config"
	"github.com/mcoot/cardbank/internal/factory"
	redisstorage "github.com/mcoot/cardbank/internal/storage/redis"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "cardbank",
		Short: "Electronic banking terminal for board games",
		Long: `cardbank runs the card-based banking terminal for a tabletop board game.

Players are identified by their token's ID. A single operator drives the
terminal with a joystick: choose the player count, enroll one token per
player, set the starting balance, then apply credits, debits, transfers, and
taxes from the menu. Joystick moves and token scans are read from a script.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Session mirror: memory, redis (env: CARDBANK_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --storage redis (env: CARDBANK_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Dotenv file with CARDBANK_* terminal settings (env: CARDBANK_ENV_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp loads the terminal configuration and wires the application
func newApp(noDelay bool) (*factory.App, error) {
	terminal, err := config.Load(cfg.EnvFile)
	if err != nil {
		return nil, err
	}
	if noDelay {
		terminal = terminal.WithoutDelays()
	}

	appCfg := factory.Config{
		Terminal:    &terminal,
		Logger:      logger,
		StorageType: cfg.Storage,
	}
	if cfg.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		appCfg.RedisConfig = &redisCfg
	}

	return factory.New(appCfg)
}
