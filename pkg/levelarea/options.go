package levelarea

import (
	"github.com/peter-kozarec/levelarea/pkg/data"
	"github.com/peter-kozarec/levelarea/pkg/plot"
)

type Option func(*Fitter)

func WithLoader(loader data.ColumnLoader) Option {
	return func(f *Fitter) {
		f.loader = loader
	}
}

func WithSink(sink plot.Sink) Option {
	return func(f *Fitter) {
		f.sink = sink
	}
}

func WithPlotOptions(options plot.Options) Option {
	return func(f *Fitter) {
		f.plotOptions = options
	}
}
