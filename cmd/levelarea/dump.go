package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peter-kozarec/levelarea/pkg/data"
	"github.com/peter-kozarec/levelarea/pkg/data/mapper"
)

func newDumpCmd(cfg *Config) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Convert a tabular survey into the binary survey format",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, sync, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer sync()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			n, err := dumpSurvey(ctx, cfg, in, out)
			if err != nil {
				logger.Error("failed to dump", zap.String("in", in), zap.Error(err))
				return err
			}
			logger.Info("dump finished", zap.String("in", in), zap.String("out", out), zap.Int("points", n))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Tabular survey to read (csv, tsv, parquet, json)")
	cmd.Flags().StringVar(&out, "out", "", "Binary survey file to write")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// dumpSurvey writes the level/area pairs of in to out and returns the number of points.
// A partially written out is removed.
func dumpSurvey(ctx context.Context, cfg *Config, in, out string) (int, error) {
	columns, err := data.NewLoader(cfg.DuckDBDSN).LoadColumns(ctx, in, cfg.LevelColumn, cfg.AreaColumn)
	if err != nil {
		return 0, err
	}
	level, area := columns[0], columns[1]

	points := make([]mapper.SurveyPoint, len(level))
	for i := range level {
		points[i] = mapper.SurveyPoint{Level: level[i], Area: area[i]}
	}

	binFile, err := os.Create(out)
	if err != nil {
		return 0, err
	}

	if err := mapper.WriteSurvey(binFile, points); err != nil {
		_ = binFile.Close()
		_ = os.Remove(out)
		return 0, err
	}
	if err := binFile.Close(); err != nil {
		_ = os.Remove(out)
		return 0, fmt.Errorf("unable to close %q: %w", out, err)
	}

	return len(points), nil
}
