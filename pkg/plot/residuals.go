package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ResidualChart plots residuals against fitted values with a zero reference line.
type ResidualChart struct {
	Title       string
	XName       string
	YName       string
	Fitted      []float64
	Residuals   []float64
	SeriesLabel string
}

func Residuals(w io.Writer, c ResidualChart, opts Options) error {
	if len(c.Fitted) == 0 {
		return ErrEmptySeries
	}
	if len(c.Fitted) != len(c.Residuals) {
		return fmt.Errorf("%w: fitted=%d, residuals=%d", ErrDimensionMismatch, len(c.Fitted), len(c.Residuals))
	}

	provider, err := opts.renderer()
	if err != nil {
		return err
	}

	xRange := paddedRange(c.Fitted)
	yRange := paddedRange(c.Residuals, []float64{0})

	label := c.SeriesLabel
	if label == "" {
		label = "Residuals"
	}

	width, height := opts.size()
	graph := chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: c.XName, Range: xRange},
		YAxis: chart.YAxis{Name: c.YName, Range: yRange},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    label,
				Style:   dotStyle(chart.ColorGreen),
				XValues: c.Fitted,
				YValues: c.Residuals,
			},
			chart.ContinuousSeries{
				Name: "Zero",
				Style: chart.Style{
					StrokeWidth:     1,
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5, 5},
				},
				XValues: []float64{xRange.Min, xRange.Max},
				YValues: []float64{0, 0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("unable to render residuals chart: %w", err)
	}
	return nil
}

// dotStyle renders points only, without connecting lines.
func dotStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}
