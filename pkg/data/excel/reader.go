package excel

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrNoSheet      = errors.New("workbook has no sheets")
	ErrNoHeader     = errors.New("sheet has no header row")
	ErrColumnAbsent = errors.New("column not found")
	ErrBadValue     = errors.New("missing or non-numeric value")
)

// Supported reports whether source is a workbook the reader can open.
func Supported(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// LoadColumns reads the named numeric columns from the first sheet of a workbook.
// The first row is the header; every following row must hold a number in each column.
func LoadColumns(source string, columns ...string) ([][]float64, error) {
	f, err := excelize.OpenFile(source)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook %q: %w", source, err)
	}
	defer func(f *excelize.File) {
		_ = f.Close()
	}(f)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	index := make([]int, len(columns))
	for i, c := range columns {
		index[i] = headerIndex(rows[0], c)
		if index[i] < 0 {
			return nil, fmt.Errorf("%w: %q in sheet %q", ErrColumnAbsent, c, sheets[0])
		}
	}

	out := make([][]float64, len(columns))
	for r, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		for i, idx := range index {
			if idx >= len(row) {
				return nil, fmt.Errorf("%w: column %q, row %d", ErrBadValue, columns[i], r+2)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: column %q, row %d: %q", ErrBadValue, columns[i], r+2, row[idx])
			}
			out[i] = append(out[i], v)
		}
	}
	return out, nil
}

func headerIndex(header []string, column string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			return i
		}
	}
	return -1
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
