package data

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peter-kozarec/levelarea/pkg/data/duckdb"
	"github.com/peter-kozarec/levelarea/pkg/data/excel"
	"github.com/peter-kozarec/levelarea/pkg/data/mapper"
)

var ErrDataLoad = errors.New("data load error")

const binaryExt = ".bin"

var readSurvey = mapper.ReadSurvey

var (
	_ ColumnLoader      = (*Loader)(nil)
	_ MultiColumnLoader = (*Loader)(nil)
)

// ColumnLoader reads one named numeric column from a tabular source.
type ColumnLoader interface {
	LoadColumn(ctx context.Context, source, column string) ([]float64, error)
}

// MultiColumnLoader reads several columns from one pass over a source.
type MultiColumnLoader interface {
	LoadColumns(ctx context.Context, source string, columns ...string) ([][]float64, error)
}

// Loader dispatches on the source extension: binary survey files go through the
// mmap reader, workbooks through excelize, everything else through DuckDB.
// All failures wrap ErrDataLoad.
type Loader struct {
	dataSourceName string
}

// NewLoader creates a loader. dataSourceName selects the DuckDB database used for
// scans; empty means in-memory.
func NewLoader(dataSourceName string) *Loader {
	return &Loader{dataSourceName: dataSourceName}
}

func (l *Loader) LoadColumn(ctx context.Context, source, column string) ([]float64, error) {
	columns, err := l.LoadColumns(ctx, source, column)
	if err != nil {
		return nil, err
	}
	return columns[0], nil
}

// LoadColumns reads several columns from a single pass over source.
func (l *Loader) LoadColumns(ctx context.Context, source string, columns ...string) ([][]float64, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns requested", ErrDataLoad)
	}
	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	var (
		out [][]float64
		err error
	)
	switch {
	case strings.EqualFold(filepath.Ext(source), binaryExt):
		out, err = l.loadBinary(source, columns)
	case excel.Supported(source):
		out, err = excel.LoadColumns(source, columns...)
	default:
		out, err = l.loadTabular(ctx, source, columns)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoad, source, err)
	}
	return out, nil
}

func (l *Loader) loadBinary(source string, columns []string) ([][]float64, error) {
	pickers := make([]func(mapper.SurveyPoint) float64, len(columns))
	for i, c := range columns {
		pick, err := mapper.ColumnPicker(c)
		if err != nil {
			return nil, err
		}
		pickers[i] = pick
	}

	points, err := readSurvey(source)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(columns))
	for i, pick := range pickers {
		out[i] = make([]float64, len(points))
		for j, p := range points {
			out[i][j] = pick(p)
		}
	}
	return out, nil
}

func (l *Loader) loadTabular(ctx context.Context, source string, columns []string) ([][]float64, error) {
	if !duckdb.Supported(source) {
		return nil, fmt.Errorf("%w: %q", duckdb.ErrUnsupportedSource, filepath.Ext(source))
	}

	r := duckdb.NewReader(l.dataSourceName)
	if err := r.Connect(); err != nil {
		return nil, err
	}
	defer r.Close()

	return r.LoadColumns(ctx, source, columns...)
}
