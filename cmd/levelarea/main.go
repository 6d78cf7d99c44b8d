package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peter-kozarec/levelarea/internal/dbg"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "levelarea",
		Short:        "Fit reservoir surface area against water level",
		Version:      Version,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable development logging")
	root.PersistentFlags().StringVar(&cfg.DuckDBDSN, "duckdb", cfg.DuckDBDSN, "DuckDB database used for scans (empty means in-memory)")
	root.PersistentFlags().StringVar(&cfg.LevelColumn, "level-column", cfg.LevelColumn, "Name of the level column")
	root.PersistentFlags().StringVar(&cfg.AreaColumn, "area-column", cfg.AreaColumn, "Name of the area column")

	root.AddCommand(newFitCmd(cfg), newDumpCmd(cfg))
	return root
}

func newLogger(cfg *Config) (*zap.Logger, func(), error) {
	logger, err := dbg.NewLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
