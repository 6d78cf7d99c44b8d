package utility

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// DisplayScale is the number of decimal places used when presenting coefficients.
const DisplayScale = 3

// Round converts v to a decimal rounded half-to-even to scale places.
// It fails for NaN, infinities and values outside the decimal range.
func Round(v float64, scale int) (decimal.Decimal, error) {
	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		// tiny magnitudes carry more fractional digits than a decimal holds
		d, err = decimal.Parse(strconv.FormatFloat(v, 'f', decimal.MaxScale, 64))
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return d.Rescale(scale), nil
}

// FormatRounded renders v with exactly scale decimal places.
func FormatRounded(v float64, scale int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	d, err := Round(v, scale)
	if err != nil {
		return "NaN"
	}
	return d.String()
}

// Display is FormatRounded at DisplayScale.
func Display(v float64) string {
	return FormatRounded(v, DisplayScale)
}
