package plot

import (
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// FitChart is an observed scatter overlaid with the fitted line.
type FitChart struct {
	Title     string
	XName     string
	YName     string
	X         []float64
	Y         []float64
	Fitted    []float64
	LineLabel string
}

func Fit(w io.Writer, c FitChart, opts Options) error {
	if len(c.X) == 0 {
		return ErrEmptySeries
	}
	if len(c.X) != len(c.Y) || len(c.X) != len(c.Fitted) {
		return fmt.Errorf("%w: x=%d, y=%d, fitted=%d", ErrDimensionMismatch, len(c.X), len(c.Y), len(c.Fitted))
	}

	provider, err := opts.renderer()
	if err != nil {
		return err
	}

	lineX, lineY := sortedPairs(c.X, c.Fitted)
	lineLabel := c.LineLabel
	if lineLabel == "" {
		lineLabel = "Fitted line"
	}

	width, height := opts.size()
	graph := chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: c.XName, Range: paddedRange(c.X)},
		YAxis: chart.YAxis{Name: c.YName, Range: paddedRange(c.Y, c.Fitted)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Observed",
				Style:   dotStyle(chart.ColorBlue),
				XValues: c.X,
				YValues: c.Y,
			},
			chart.ContinuousSeries{
				Name: lineLabel,
				Style: chart.Style{
					StrokeWidth: 2,
					StrokeColor: chart.ColorRed,
				},
				XValues: lineX,
				YValues: lineY,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("unable to render fit chart: %w", err)
	}
	return nil
}

// sortedPairs returns copies of x and y ordered by x so the line is drawn left to right.
func sortedPairs(x, y []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i, k := range idx {
		xs[i] = x[k]
		ys[i] = y[k]
	}
	return xs, ys
}
