package utility

import (
	"math"
	"testing"
)

func TestUtility_FormatRounded(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		scale int
		want  string
	}{
		{"Integer padded", 2, 3, "2.000"},
		{"Zero", 0, 3, "0.000"},
		{"Round down", 1.23449, 3, "1.234"},
		{"Round up", 1.2346, 3, "1.235"},
		{"Negative rounded", -12.3456, 3, "-12.346"},
		{"Large", 123456.7891, 3, "123456.789"},
		{"Scale one", 0.96, 1, "1.0"},
		{"NaN", math.NaN(), 3, "NaN"},
		{"Positive infinity", math.Inf(1), 3, "+Inf"},
		{"Negative infinity", math.Inf(-1), 3, "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRounded(tt.value, tt.scale); got != tt.want {
				t.Errorf("FormatRounded(%v, %d) = %q, want %q", tt.value, tt.scale, got, tt.want)
			}
		})
	}
}

func TestUtility_RoundKeepsInputUntouched(t *testing.T) {
	v := 2.0004999
	d, err := Round(v, DisplayScale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2.000" {
		t.Errorf("Round = %s, want 2.000", d)
	}
	if v != 2.0004999 {
		t.Error("input value changed")
	}
	if Display(v) != "2.000" {
		t.Errorf("Display = %s, want 2.000", Display(v))
	}
}

func TestUtility_FormatRoundedTinyValues(t *testing.T) {
	for _, v := range []float64{2.220446049250313e-16, -4.440892098500626e-16, 1e-300} {
		got := FormatRounded(v, DisplayScale)
		if got != "0.000" && got != "-0.000" {
			t.Errorf("FormatRounded(%v) = %q, want 0.000", v, got)
		}
	}
}
