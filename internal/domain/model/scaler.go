package model

import (
	"errors"
	"fmt"
)

var ErrShape = errors.New("matrix shape mismatch")

type Scaler interface {
	Transform(rows [][]float64) ([][]float64, error)
}

// StandardScaler mirrors scikit-learn's StandardScaler: (x - mean) / scale.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

func (s StandardScaler) Transform(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, 0, len(rows))
	for i, r := range rows {
		if len(r) != len(s.Mean) || len(r) != len(s.Scale) {
			return nil, fmt.Errorf("%w: row %d has %d columns, scaler expects %d", ErrShape, i, len(r), len(s.Mean))
		}
		row := make([]float64, len(r))
		for j, x := range r {
			sc := s.Scale[j]
			if sc == 0 {
				sc = 1
			}
			row[j] = (x - s.Mean[j]) / sc
		}
		out = append(out, row)
	}
	return out, nil
}

// MinMaxScaler mirrors scikit-learn's MinMaxScaler: x * scale + min.
type MinMaxScaler struct {
	Min   []float64
	Scale []float64
}

func (s MinMaxScaler) Transform(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, 0, len(rows))
	for i, r := range rows {
		if len(r) != len(s.Min) || len(r) != len(s.Scale) {
			return nil, fmt.Errorf("%w: row %d has %d columns, scaler expects %d", ErrShape, i, len(r), len(s.Min))
		}
		row := make([]float64, len(r))
		for j, x := range r {
			row[j] = x*s.Scale[j] + s.Min[j]
		}
		out = append(out, row)
	}
	return out, nil
}
