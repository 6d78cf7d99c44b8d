package levelarea

import (
	"go.uber.org/zap"

	"github.com/peter-kozarec/levelarea/pkg/utility"
)

// Report summarises a fit against a dataset. Values keep full precision;
// rounding happens only when the report is logged or formatted.
type Report struct {
	RunID          utility.RunID
	N              int
	Slope          float64
	Intercept      float64
	RSquared       float64
	Correlation    float64
	RMSE           float64
	MAE            float64
	MaxAbsResidual float64
}

func (f *Fitter) Report(level, area []float64) (Report, error) {
	d, err := f.model.Diagnostics(level, area)
	if err != nil {
		return Report{}, err
	}
	slope, _ := f.model.Slope()
	intercept, _ := f.model.Intercept()

	return Report{
		RunID:          utility.CurrentRunID(),
		N:              d.N,
		Slope:          slope,
		Intercept:      intercept,
		RSquared:       d.RSquared,
		Correlation:    d.Correlation,
		RMSE:           d.RMSE,
		MAE:            d.MAE,
		MaxAbsResidual: d.MaxAbsResidual,
	}, nil
}

func (r Report) Fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("run_id", r.RunID),
		zap.Int("n", r.N),
		zap.String("slope", utility.Display(r.Slope)),
		zap.String("intercept", utility.Display(r.Intercept)),
		zap.String("r2", utility.Display(r.RSquared)),
		zap.String("correlation", utility.Display(r.Correlation)),
		zap.String("rmse", utility.Display(r.RMSE)),
		zap.String("mae", utility.Display(r.MAE)),
		zap.String("max_abs_residual", utility.Display(r.MaxAbsResidual)),
	}
}

func (r Report) Log(logger *zap.Logger) {
	logger.Info("level/area report", r.Fields()...)
}
