package mapper

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	LevelColumn = "level"
	AreaColumn  = "area"
)

var ErrUnknownColumn = errors.New("unknown column")

// SurveyPoint is one level/area observation of a binary survey file.
type SurveyPoint struct {
	Level float64
	Area  float64
}

func WriteSurvey(w io.Writer, points []SurveyPoint) error {
	for i, p := range points {
		if err := binary.Write(w, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("unable to write point %d: %w", i, err)
		}
	}
	return nil
}

func ReadSurvey(dataSourceName string) ([]SurveyPoint, error) {
	r := NewReader[SurveyPoint](dataSourceName)
	if err := r.Open(); err != nil {
		return nil, err
	}
	defer r.Close()

	count, err := r.EntryCount()
	if err != nil {
		return nil, err
	}

	points := make([]SurveyPoint, count)
	for i := int64(0); i < count; i++ {
		if err := r.Read(i, &points[i]); err != nil {
			return nil, fmt.Errorf("error reading entry at index %d: %w", i, err)
		}
	}
	return points, nil
}

// ColumnPicker returns the accessor for a survey column ("level" or "area").
func ColumnPicker(column string) (func(SurveyPoint) float64, error) {
	switch column {
	case LevelColumn:
		return func(p SurveyPoint) float64 { return p.Level }, nil
	case AreaColumn:
		return func(p SurveyPoint) float64 { return p.Area }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
}

// LoadColumn reads a single column of a binary survey file.
func LoadColumn(dataSourceName, column string) ([]float64, error) {
	pick, err := ColumnPicker(column)
	if err != nil {
		return nil, err
	}

	points, err := ReadSurvey(dataSourceName)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = pick(p)
	}
	return out, nil
}
