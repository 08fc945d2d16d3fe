// Package cli is the cashier-facing front of the POS, a cobra command
// tree over the services core.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"momo-pos/config"
	"momo-pos/services"
	"momo-pos/storage"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	store  storage.Store
	pos    *services.POS
)

var rootCmd = &cobra.Command{
	Use:   "momo-pos",
	Short: "Point of sale for the momos stall",
	Long: `momo-pos runs the stall's till from a terminal: menu browsing,
bill assembly, checkout with text receipts, order history, sales summary
and CSV import/export. State persists locally between sessions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		ctx := cmd.Context()
		switch cfg.Storage.Backend {
		case "file":
			store, err = storage.NewFileStore(cfg.Storage.DataDir)
		case "postgres":
			store, err = storage.NewPgStore(ctx, cfg.DB)
		default:
			err = fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
		}
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		pos = services.NewPOS(ctx, store, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closer, ok := store.(interface{ Close() }); ok {
			closer.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(sellCmd, menuCmd, ordersCmd, summaryCmd, resetCmd)
}

// Execute runs the CLI against the loaded configuration.
func Execute(ctx context.Context, c *config.Config) error {
	cfg = c
	return rootCmd.ExecuteContext(ctx)
}
