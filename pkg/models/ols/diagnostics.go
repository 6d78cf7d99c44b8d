package ols

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type Diagnostics struct {
	N              int
	RSquared       float64
	Correlation    float64
	RMSE           float64
	MAE            float64
	MaxAbsResidual float64
}

// Diagnostics evaluates the fitted line against (x, y).
func (m *Model) Diagnostics(x, y []float64) (Diagnostics, error) {
	if m == nil {
		return Diagnostics{}, ErrNotFitted
	}
	if err := checkDimensions(x, y); err != nil {
		return Diagnostics{}, err
	}

	residuals, err := m.Residuals(x, y)
	if err != nil {
		return Diagnostics{}, err
	}

	var sumSq, sumAbs, maxAbs float64
	for _, r := range residuals {
		a := math.Abs(r)
		sumSq += r * r
		sumAbs += a
		maxAbs = math.Max(maxAbs, a)
	}
	n := float64(len(residuals))

	// undefined for a constant series, reported as 0
	correlation := stat.Correlation(x, y, nil)
	if math.IsNaN(correlation) {
		correlation = 0
	}

	return Diagnostics{
		N:              len(residuals),
		RSquared:       rSquared(x, y, m.intercept, m.slope),
		Correlation:    correlation,
		RMSE:           math.Sqrt(sumSq / n),
		MAE:            sumAbs / n,
		MaxAbsResidual: maxAbs,
	}, nil
}
