package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

var (
	ErrNotConnected      = errors.New("reader not connected")
	ErrUnsupportedSource = errors.New("unsupported source format")
	ErrNullValue         = errors.New("null value")
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

// NewReader creates a reader backed by the DuckDB database at dataSourceName.
// An empty name opens an in-memory database, which is all that is needed for file scans.
func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	if r.db != nil {
		_ = r.db.Close()
		r.db = nil
	}
}

func (r *Reader) LoadColumn(ctx context.Context, source, column string) ([]float64, error) {
	columns, err := r.LoadColumns(ctx, source, column)
	if err != nil {
		return nil, err
	}
	return columns[0], nil
}

// LoadColumns reads the named numeric columns of source in file order.
// The result holds one slice per requested column.
func (r *Reader) LoadColumns(ctx context.Context, source string, columns ...string) ([][]float64, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns requested")
	}

	scan, err := scanExpression(source)
	if err != nil {
		return nil, err
	}

	selects := make([]string, len(columns))
	for i, c := range columns {
		selects[i] = fmt.Sprintf("CAST(%s AS DOUBLE)", quoteIdentifier(c))
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), scan)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying %q: %w", source, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	out := make([][]float64, len(columns))
	values := make([]sql.NullFloat64, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	row := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning row %d: %w", row, err)
		}
		for i, v := range values {
			if !v.Valid {
				return nil, fmt.Errorf("%w: column %q, row %d", ErrNullValue, columns[i], row)
			}
			out[i] = append(out[i], v.Float64)
		}
		row++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}

	return out, nil
}

func scanExpression(source string) (string, error) {
	path := quoteLiteral(source)

	switch strings.ToLower(filepath.Ext(source)) {
	case ".csv", ".tsv", ".txt":
		return fmt.Sprintf("read_csv(%s, header = true)", path), nil
	case ".parquet":
		return fmt.Sprintf("read_parquet(%s)", path), nil
	case ".json", ".ndjson", ".jsonl":
		return fmt.Sprintf("read_json_auto(%s)", path), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, source)
	}
}

// Supported reports whether source has an extension the reader can scan.
func Supported(source string) bool {
	_, err := scanExpression(source)
	return err == nil
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}
