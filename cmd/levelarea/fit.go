package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peter-kozarec/levelarea/pkg/data"
	"github.com/peter-kozarec/levelarea/pkg/levelarea"
	"github.com/peter-kozarec/levelarea/pkg/plot"
)

func newFitCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit [source]",
		Short: "Fit area = slope * level + intercept and render the fit and residual charts",
		Long: `Loads the level and area columns from a csv, tsv, parquet, json or binary
survey file, fits a least squares line, logs the coefficients and writes
fit and residual charts into the output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Source = args[0]
			}
			logger, sync, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer sync()

			return runFit(cmd.Context(), logger, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "Directory the charts are written to")
	cmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "Chart format: png or svg")
	cmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "Chart width in pixels")
	cmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "Chart height in pixels")

	return cmd
}

func runFit(ctx context.Context, logger *zap.Logger, cfg *Config) error {
	if cfg.Source == "" {
		return fmt.Errorf("no source given: pass it as an argument or set LEVELAREA_SOURCE")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := plot.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("levelarea %s", Version))
	defer logger.Info("done")

	fitter := levelarea.NewFitter(logger,
		levelarea.WithLoader(data.NewLoader(cfg.DuckDBDSN)),
		levelarea.WithSink(plot.NewDirSink(cfg.OutputDir)),
		levelarea.WithPlotOptions(plot.Options{Width: cfg.Width, Height: cfg.Height, Format: format}))

	level, area, err := fitter.LoadSeries(ctx, cfg.Source, cfg.LevelColumn, cfg.AreaColumn)
	if err != nil {
		return err
	}

	if _, err := fitter.Fit(level, area); err != nil {
		return err
	}

	report, err := fitter.Report(level, area)
	if err != nil {
		return err
	}
	report.Log(logger)

	predicted, err := fitter.Predict(level)
	if err != nil {
		return err
	}
	if err := fitter.PlotFit(level, area, predicted); err != nil {
		return err
	}
	if err := fitter.PlotResiduals(level, area); err != nil {
		return err
	}

	logger.Info("charts ready", zap.String("dir", cfg.OutputDir))
	return nil
}
