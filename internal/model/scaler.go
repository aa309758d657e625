package model

import (
	"errors"
	"fmt"
	"math"
)

// Scaler applies a fitted standardization: (x - mean) / scale per feature.
type Scaler struct {
	mean  []float64
	scale []float64
}

func NewScaler(params ScalerParams) (*Scaler, error) {
	if len(params.Mean) == 0 {
		return nil, errors.New("scaler has no parameters")
	}
	if len(params.Mean) != len(params.Scale) {
		return nil, fmt.Errorf("scaler has %d means and %d scales", len(params.Mean), len(params.Scale))
	}
	for i, s := range params.Scale {
		if !(s > 0) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("scale of feature %d must be positive and finite, got %v", i, s)
		}
	}
	for i, m := range params.Mean {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("mean of feature %d must be finite, got %v", i, m)
		}
	}
	return &Scaler{
		mean:  append([]float64(nil), params.Mean...),
		scale: append([]float64(nil), params.Scale...),
	}, nil
}

func (s *Scaler) Dim() int {
	return len(s.mean)
}

func (s *Scaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.mean) {
		return nil, &SchemaMismatchError{Expected: len(s.mean), Got: len(vector)}
	}
	out := make([]float64, len(vector))
	for i, v := range vector {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}
	return out, nil
}
