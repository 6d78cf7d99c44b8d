package ols

import (
	"errors"
	"math"
	"sort"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestModel_Fit(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
		wantR2        float64
	}{
		{
			name:          "Through origin",
			x:             []float64{1, 2, 3, 4},
			y:             []float64{2, 4, 6, 8},
			wantSlope:     2,
			wantIntercept: 0,
			wantR2:        1,
		},
		{
			name:          "Positive intercept",
			x:             []float64{1, 2, 3},
			y:             []float64{3, 5, 7},
			wantSlope:     2,
			wantIntercept: 1,
			wantR2:        1,
		},
		{
			name:          "Constant area",
			x:             []float64{1, 2, 3},
			y:             []float64{5, 5, 5},
			wantSlope:     0,
			wantIntercept: 5,
			wantR2:        1,
		},
		{
			name:          "Negative slope",
			x:             []float64{10, 20, 30, 40, 50},
			y:             []float64{-5, -25, -45, -65, -85},
			wantSlope:     -2,
			wantIntercept: 15,
			wantR2:        1,
		},
		{
			name:          "Two points",
			x:             []float64{100.5, 101.5},
			y:             []float64{1200, 1450},
			wantSlope:     250,
			wantIntercept: -23925,
			wantR2:        1,
		},
		{
			name:          "Noisy symmetric",
			x:             []float64{0, 1, 2, 3},
			y:             []float64{1, 2, 4, 5},
			wantSlope:     1.4,
			wantIntercept: 0.9,
			wantR2:        0.98,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(tt.x, tt.y)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			slope, _ := m.Slope()
			intercept, _ := m.Intercept()
			r2, _ := m.RSquared()

			if !almostEqual(slope, tt.wantSlope, 1e-6) {
				t.Errorf("slope = %v, want %v", slope, tt.wantSlope)
			}
			if !almostEqual(intercept, tt.wantIntercept, 1e-6) {
				t.Errorf("intercept = %v, want %v", intercept, tt.wantIntercept)
			}
			if !almostEqual(r2, tt.wantR2, 1e-6) {
				t.Errorf("r2 = %v, want %v", r2, tt.wantR2)
			}
			if m.N() != len(tt.x) {
				t.Errorf("n = %d, want %d", m.N(), len(tt.x))
			}
		})
	}
}

func TestModel_FitErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{"Length mismatch", []float64{1, 2, 3}, []float64{1, 2}, ErrDimensionMismatch},
		{"Single point", []float64{1}, []float64{1}, ErrDimensionMismatch},
		{"Empty", nil, nil, ErrDimensionMismatch},
		{"Constant x", []float64{2, 2, 2}, []float64{1, 2, 3}, ErrDegenerate},
		{"NaN value", []float64{1, math.NaN(), 3}, []float64{1, 2, 3}, ErrDegenerate},
		{"Inf value", []float64{1, 2, 3}, []float64{1, math.Inf(1), 3}, ErrDegenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Errorf("expected nil model, got %v", m)
			}
		})
	}
}

func TestModel_RecoversLinearRelation(t *testing.T) {
	for _, a := range []float64{-3.5, -0.01, 0.75, 12, 4000} {
		for _, b := range []float64{-100, 0, 2.5, 98765} {
			x := make([]float64, 25)
			y := make([]float64, 25)
			for i := range x {
				x[i] = 300 + float64(i)*0.37
				y[i] = a*x[i] + b
			}

			m, err := Fit(x, y)
			if err != nil {
				t.Fatalf("a=%v b=%v: unexpected error: %v", a, b, err)
			}

			slope, _ := m.Slope()
			intercept, _ := m.Intercept()
			scale := math.Max(1, math.Abs(a)*x[len(x)-1]+math.Abs(b))
			if !almostEqual(slope, a, 1e-9*scale) {
				t.Errorf("a=%v b=%v: slope = %v", a, b, slope)
			}
			if !almostEqual(intercept, b, 1e-7*scale) {
				t.Errorf("a=%v b=%v: intercept = %v", a, b, intercept)
			}

			predicted, err := m.Predict(x)
			if err != nil {
				t.Fatalf("unexpected predict error: %v", err)
			}
			for i := range predicted {
				if !almostEqual(predicted[i], y[i], 1e-7*scale) {
					t.Errorf("a=%v b=%v: predicted[%d] = %v, want %v", a, b, i, predicted[i], y[i])
				}
			}
		}
	}
}

func TestModel_OrderInvariance(t *testing.T) {
	x := []float64{3.2, 1.1, 4.8, 2.0, 5.5, 0.4, 3.9}
	y := []float64{10.1, 4.0, 14.2, 7.3, 17.0, 2.2, 12.5}

	m1, err := Fit(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i, k := range idx {
		xs[i] = x[k]
		ys[i] = y[k]
	}

	m2, err := Fit(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s1, _ := m1.Slope()
	s2, _ := m2.Slope()
	i1, _ := m1.Intercept()
	i2, _ := m2.Intercept()

	if !almostEqual(s1, s2, tolerance) {
		t.Errorf("slope changed after sort: %v vs %v", s1, s2)
	}
	if !almostEqual(i1, i2, tolerance) {
		t.Errorf("intercept changed after sort: %v vs %v", i1, i2)
	}
}

func TestModel_NilModel(t *testing.T) {
	var m *Model

	if _, err := m.Slope(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Slope err = %v", err)
	}
	if _, err := m.Intercept(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Intercept err = %v", err)
	}
	if _, err := m.RSquared(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("RSquared err = %v", err)
	}
	if _, err := m.Predict([]float64{1}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Predict err = %v", err)
	}
	if _, err := m.Score([]float64{1, 2}, []float64{1, 2}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Score err = %v", err)
	}
	if _, err := m.Residuals([]float64{1}, []float64{1}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Residuals err = %v", err)
	}
	if _, err := m.Diagnostics([]float64{1, 2}, []float64{1, 2}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Diagnostics err = %v", err)
	}
	if m.N() != 0 {
		t.Errorf("N = %d, want 0", m.N())
	}
}

func TestModel_Residuals(t *testing.T) {
	m, err := Fit([]float64{0, 1, 2, 3}, []float64{1, 2, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.Residuals([]float64{0, 1, 2, 3}, []float64{1, 2, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// y = 1.4x + 0.9
	want := []float64{0.1, -0.3, 0.3, -0.1}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-9) {
			t.Errorf("residual[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := m.Residuals([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestModel_ScoreConstantTarget(t *testing.T) {
	m, err := Fit([]float64{1, 2, 3}, []float64{5, 5, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"Exact prediction", []float64{4, 5, 6}, []float64{5, 5, 5}, 1},
		{"Missed prediction", []float64{4, 5, 6}, []float64{7, 7, 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Score(tt.x, tt.y)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.IsNaN(got) || !almostEqual(got, tt.want, tolerance) {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}
