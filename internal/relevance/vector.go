// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import "math"

// Cosine returns the cosine similarity of two vectors, accumulated in
// float64. A zero-norm or length-mismatched pair yields -1, so a
// degenerate vector ranks below every real score instead of dividing
// by zero.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return -1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return -1
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
