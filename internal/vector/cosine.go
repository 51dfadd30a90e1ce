// Package vector ranks stored records by cosine similarity to a query vector.
package vector

import "math"

// CosineSimilarity returns dot(a,b) / (|a|*|b|). The result is NaN when the
// lengths differ or either vector is all zeros.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
