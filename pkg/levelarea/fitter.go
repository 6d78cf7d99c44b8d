package levelarea

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/peter-kozarec/levelarea/pkg/data"
	"github.com/peter-kozarec/levelarea/pkg/models/ols"
	"github.com/peter-kozarec/levelarea/pkg/plot"
	"github.com/peter-kozarec/levelarea/pkg/utility"
)

var (
	ErrDataLoad          = data.ErrDataLoad
	ErrDimensionMismatch = ols.ErrDimensionMismatch
	ErrNotFitted         = ols.ErrNotFitted
	ErrDegenerate        = ols.ErrDegenerate
)

const (
	LevelColumn = "level"
	AreaColumn  = "area"

	FitChartName               = "fit"
	ResidualsChartName         = "residuals"
	ResidualHistogramChartName = "residuals_hist"

	defaultChartDir = "charts"
)

// Fitter fits area as a linear function of reservoir level.
// It starts unfitted; Fit is the only transition to fitted and replaces any previous model.
type Fitter struct {
	logger      *zap.Logger
	loader      data.ColumnLoader
	sink        plot.Sink
	plotOptions plot.Options

	model *ols.Model
}

func NewFitter(logger *zap.Logger, options ...Option) *Fitter {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Fitter{
		logger:      logger,
		loader:      data.NewLoader(""),
		sink:        plot.NewDirSink(defaultChartDir),
		plotOptions: plot.DefaultOptions(),
	}
	for _, option := range options {
		option(f)
	}
	return f
}

func (f *Fitter) LoadColumn(ctx context.Context, source, column string) ([]float64, error) {
	values, err := f.loader.LoadColumn(ctx, source, column)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("column loaded",
		zap.String("source", source),
		zap.String("column", column),
		zap.Int("rows", len(values)))
	return values, nil
}

// LoadSeries reads the level and area columns of source.
func (f *Fitter) LoadSeries(ctx context.Context, source, levelColumn, areaColumn string) ([]float64, []float64, error) {
	if multi, ok := f.loader.(data.MultiColumnLoader); ok {
		columns, err := multi.LoadColumns(ctx, source, levelColumn, areaColumn)
		if err != nil {
			return nil, nil, err
		}
		return columns[0], columns[1], nil
	}

	level, err := f.LoadColumn(ctx, source, levelColumn)
	if err != nil {
		return nil, nil, err
	}
	area, err := f.LoadColumn(ctx, source, areaColumn)
	if err != nil {
		return nil, nil, err
	}
	return level, area, nil
}

func (f *Fitter) Fit(level, area []float64) (*ols.Model, error) {
	model, err := ols.Fit(level, area)
	if err != nil {
		return nil, fmt.Errorf("unable to fit level/area: %w", err)
	}
	f.model = model

	slope, _ := model.Slope()
	intercept, _ := model.Intercept()
	r2, _ := model.RSquared()
	f.logger.Info("level/area fitted",
		zap.Float64("slope", slope),
		zap.Float64("intercept", intercept),
		zap.Float64("r2", r2),
		zap.Int("n", model.N()))

	return model, nil
}

func (f *Fitter) Model() (*ols.Model, error) {
	if f.model == nil {
		return nil, ErrNotFitted
	}
	return f.model, nil
}

func (f *Fitter) Intercept() (float64, error) {
	return f.model.Intercept()
}

func (f *Fitter) Slope() (float64, error) {
	return f.model.Slope()
}

func (f *Fitter) Predict(level []float64) ([]float64, error) {
	return f.model.Predict(level)
}

func (f *Fitter) Score(level, area []float64) (float64, error) {
	return f.model.Score(level, area)
}

func (f *Fitter) Residuals(level, area []float64) ([]float64, error) {
	return f.model.Residuals(level, area)
}

// Equation renders the fitted line with coefficients rounded for display.
func (f *Fitter) Equation() (string, error) {
	slope, err := f.model.Slope()
	if err != nil {
		return "", err
	}
	intercept, _ := f.model.Intercept()
	return fmt.Sprintf("area = %s * level + %s", utility.Display(slope), utility.Display(intercept)), nil
}

func (f *Fitter) PlotFit(level, area, predicted []float64) error {
	if f.model == nil {
		return ErrNotFitted
	}
	if len(level) != len(area) || len(level) != len(predicted) {
		return fmt.Errorf("%w: level=%d, area=%d, predicted=%d", ErrDimensionMismatch, len(level), len(area), len(predicted))
	}

	r2, err := f.model.Score(level, area)
	if err != nil {
		return err
	}
	slope, _ := f.model.Slope()
	intercept, _ := f.model.Intercept()

	c := plot.FitChart{
		Title: fmt.Sprintf("Area (m²) = %s * Level (m) + %s   R² = %s",
			utility.Display(slope), utility.Display(intercept), utility.Display(r2)),
		XName:     "Level (m)",
		YName:     "Area (m²)",
		X:         level,
		Y:         area,
		Fitted:    predicted,
		LineLabel: "Fitted line",
	}

	return f.render(FitChartName, func(w io.Writer) error {
		return plot.Fit(w, c, f.plotOptions)
	})
}

func (f *Fitter) PlotResiduals(level, area []float64) error {
	if f.model == nil {
		return ErrNotFitted
	}

	residuals, err := f.model.Residuals(level, area)
	if err != nil {
		return err
	}
	fitted, _ := f.model.Predict(level)
	r2, err := f.model.Score(level, area)
	if err != nil {
		return err
	}

	c := plot.ResidualChart{
		Title:       "Residuals for the level/area fit",
		XName:       "Predicted area (m²)",
		YName:       "Residual (m²)",
		Fitted:      fitted,
		Residuals:   residuals,
		SeriesLabel: fmt.Sprintf("Residuals (R² = %s)", utility.Display(r2)),
	}

	if err := f.render(ResidualsChartName, func(w io.Writer) error {
		return plot.Residuals(w, c, f.plotOptions)
	}); err != nil {
		return err
	}

	h := plot.HistogramChart{
		Title:  "Residual distribution (m²)",
		Values: residuals,
		Bins:   plot.DefaultBins,
	}
	return f.render(ResidualHistogramChartName, func(w io.Writer) error {
		return plot.Histogram(w, h, f.plotOptions)
	})
}

func (f *Fitter) render(chartName string, draw func(w io.Writer) error) error {
	format := f.plotOptions.Format
	if format == "" {
		format = plot.FormatPNG
	}
	name := chartName + "." + format.Ext()

	w, err := f.sink.Create(name)
	if err != nil {
		return err
	}
	if err := draw(w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("unable to finish chart %q: %w", name, err)
	}

	f.logger.Info("chart written", zap.String("chart", name))
	return nil
}
