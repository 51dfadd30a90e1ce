package vector

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"scaled", []float32{1, 0}, []float32{5, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 1}, []float32{-1, -1}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	vectors := [][]float32{
		{0.1, 0.2, 0.3},
		{-0.5, 0.4, 0.9},
		{3, -7, 1e-3},
		{1e6, 1e-6, -42},
	}
	for i, a := range vectors {
		for j, b := range vectors {
			ab := CosineSimilarity(a, b)
			ba := CosineSimilarity(b, a)
			if ab != ba {
				t.Errorf("asymmetric for %d,%d: %v vs %v", i, j, ab, ba)
			}
			if ab < -1-1e-9 || ab > 1+1e-9 {
				t.Errorf("out of bounds for %d,%d: %v", i, j, ab)
			}
		}
	}
}

func TestCosineSimilarity_Degenerate(t *testing.T) {
	if !math.IsNaN(CosineSimilarity([]float32{0, 0}, []float32{1, 2})) {
		t.Error("expected NaN for zero vector")
	}
	if !math.IsNaN(CosineSimilarity([]float32{1}, []float32{1, 2})) {
		t.Error("expected NaN for length mismatch")
	}
}
