package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

const DefaultBins = 10

// HistogramChart is the distribution of residuals shown next to the residual scatter.
type HistogramChart struct {
	Title  string
	Values []float64
	Bins   int
}

type bin struct {
	center float64
	count  int
}

func Histogram(w io.Writer, c HistogramChart, opts Options) error {
	if len(c.Values) == 0 {
		return ErrEmptySeries
	}

	provider, err := opts.renderer()
	if err != nil {
		return err
	}

	bins := histogramBins(c.Values, c.Bins)
	bars := make([]chart.Value, len(bins))
	maxCount := 0
	for i, b := range bins {
		bars[i] = chart.Value{Value: float64(b.count), Label: fmt.Sprintf("%.3g", b.center)}
		maxCount = max(maxCount, b.count)
	}

	width, height := opts.size()
	graph := chart.BarChart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth: max(4, (width-96)/(2*len(bins))),
		YAxis: chart.YAxis{
			Name:  "Count",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount) + 1},
		},
		Bars: bars,
	}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("unable to render histogram: %w", err)
	}
	return nil
}

// histogramBins splits values into n equal width bins. A zero width span puts
// every value into a single bin.
func histogramBins(values []float64, n int) []bin {
	if n <= 0 {
		n = DefaultBins
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if hi == lo {
		return []bin{{center: lo, count: len(values)}}
	}

	width := (hi - lo) / float64(n)
	out := make([]bin, n)
	for i := range out {
		out[i].center = lo + width*(float64(i)+0.5)
	}
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		out[i].count++
	}
	return out
}
