package ols

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrNotFitted         = errors.New("model not fitted")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrDegenerate        = errors.New("degenerate input")
)

const minPoints = 2

// Model is a simple linear least squares fit y = slope*x + intercept.
// A Model is immutable once returned by Fit. A nil *Model is treated as not fitted.
type Model struct {
	intercept float64
	slope     float64
	rSquared  float64
	n         int
}

// Fit estimates intercept and slope by ordinary least squares.
func Fit(x, y []float64) (*Model, error) {
	if err := checkDimensions(x, y); err != nil {
		return nil, err
	}
	if err := checkFinite(x, y); err != nil {
		return nil, err
	}
	if isConstant(x) {
		return nil, fmt.Errorf("%w: all %d x values are equal", ErrDegenerate, len(x))
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	return &Model{
		intercept: intercept,
		slope:     slope,
		rSquared:  rSquared(x, y, intercept, slope),
		n:         len(x),
	}, nil
}

func (m *Model) Intercept() (float64, error) {
	if m == nil {
		return 0, ErrNotFitted
	}
	return m.intercept, nil
}

func (m *Model) Slope() (float64, error) {
	if m == nil {
		return 0, ErrNotFitted
	}
	return m.slope, nil
}

// RSquared is the coefficient of determination on the training data.
func (m *Model) RSquared() (float64, error) {
	if m == nil {
		return 0, ErrNotFitted
	}
	return m.rSquared, nil
}

// N is the number of observations the model was fitted on.
func (m *Model) N() int {
	if m == nil {
		return 0
	}
	return m.n
}

func (m *Model) PredictValue(x float64) float64 {
	return m.slope*x + m.intercept
}

func (m *Model) Predict(x []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = m.PredictValue(v)
	}
	return out, nil
}

// Score returns the coefficient of determination of the model against (x, y).
func (m *Model) Score(x, y []float64) (float64, error) {
	if m == nil {
		return 0, ErrNotFitted
	}
	if err := checkDimensions(x, y); err != nil {
		return 0, err
	}
	return rSquared(x, y, m.intercept, m.slope), nil
}

// Residuals returns observed minus predicted for every pair.
func (m *Model) Residuals(x, y []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNotFitted
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrDimensionMismatch, len(x), len(y))
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - m.PredictValue(x[i])
	}
	return out, nil
}

func (m *Model) String() string {
	if m == nil {
		return "ols.Model(unfitted)"
	}
	return fmt.Sprintf("ols.Model(slope=%g, intercept=%g, n=%d)", m.slope, m.intercept, m.n)
}

// rSquared is the coefficient of determination. A constant y has no variance to
// explain: the score is 1 when the line reproduces it exactly and 0 otherwise.
func rSquared(x, y []float64, intercept, slope float64) float64 {
	mean := stat.Mean(y, nil)

	var ssTot, ssRes float64
	for i := range y {
		d := y[i] - mean
		r := y[i] - (slope*x[i] + intercept)
		ssTot += d * d
		ssRes += r * r
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return stat.RSquared(x, y, nil, intercept, slope)
}

func checkDimensions(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrDimensionMismatch, len(x), len(y))
	}
	if len(x) < minPoints {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrDimensionMismatch, minPoints, len(x))
	}
	return nil
}

func checkFinite(x, y []float64) error {
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return fmt.Errorf("%w: non-finite value at index %d", ErrDegenerate, i)
		}
	}
	return nil
}

func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}
