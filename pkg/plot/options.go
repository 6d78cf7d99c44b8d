package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

var (
	ErrUnknownFormat     = errors.New("unknown chart format")
	ErrDimensionMismatch = errors.New("series length mismatch")
	ErrEmptySeries       = errors.New("empty series")
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

type Options struct {
	Width  int
	Height int
	Format Format
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Format: FormatPNG,
	}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext is the file extension matching the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

func (o Options) renderer() (chart.RendererProvider, error) {
	switch o.Format {
	case FormatPNG, "":
		return chart.PNG, nil
	case FormatSVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// paddedRange spans all values with a 5% margin. A zero width span is widened so
// constant series (a perfect fit has all residuals at zero) still render.
func paddedRange(series ...[]float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	first := true
	for _, s := range series {
		for _, v := range s {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	span := hi - lo
	if span == 0 {
		span = max(1, abs(lo))
		return &chart.ContinuousRange{Min: lo - span/2, Max: hi + span/2}
	}
	return &chart.ContinuousRange{Min: lo - span*0.05, Max: hi + span*0.05}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
