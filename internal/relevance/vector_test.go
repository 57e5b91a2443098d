// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "three four five", a: []float32{1, 0}, b: []float32{3, 4}, want: 0.6},
		{name: "scale invariant", a: []float32{2, 4, 6}, b: []float32{1, 2, 3}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCosineDegenerate(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
	}{
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}},
		{name: "both empty", a: nil, b: nil},
		{name: "zero vector left", a: []float32{0, 0}, b: []float32{1, 0}},
		{name: "zero vector right", a: []float32{1, 0}, b: []float32{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); got != -1 {
				t.Errorf("Cosine(%v, %v) = %v, want -1", tt.a, tt.b, got)
			}
		})
	}
}
