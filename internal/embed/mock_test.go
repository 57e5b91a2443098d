// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"context"
	"math"
	"testing"
)

func TestMockDeterministic(t *testing.T) {
	m := &Mock{}
	ctx := context.Background()

	a, err := m.EmbedQuery(ctx, "some text")
	if err != nil {
		t.Fatalf("EmbedQuery() error = %v", err)
	}
	b, err := m.EmbedQuery(ctx, "some text")
	if err != nil {
		t.Fatalf("EmbedQuery() error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %v vs %v", i, a[i], b[i])
		}
	}

	c, err := m.EmbedQuery(ctx, "different text")
	if err != nil {
		t.Fatalf("EmbedQuery() error = %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct texts produced identical vectors")
	}
	if m.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", m.Calls())
	}
}

func TestMockVectorsAreUnitNorm(t *testing.T) {
	m := &Mock{}
	vecs, err := m.EmbedDocuments(context.Background(), []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatalf("EmbedDocuments() error = %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("len(vecs) = %d, want 3", len(vecs))
	}
	for i, v := range vecs {
		var sumSq float64
		for _, x := range v {
			sumSq += float64(x) * float64(x)
		}
		if math.Abs(math.Sqrt(sumSq)-1) > 1e-5 {
			t.Errorf("vecs[%d] norm = %v, want 1", i, math.Sqrt(sumSq))
		}
	}
}

func TestMockOverrides(t *testing.T) {
	want := []float32{1, 0}
	m := &Mock{
		EmbedQueryFunc: func(context.Context, string) ([]float32, error) {
			return want, nil
		},
	}
	got, err := m.EmbedQuery(context.Background(), "anything")
	if err != nil {
		t.Fatalf("EmbedQuery() error = %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("EmbedQuery() = %v, want %v", got, want)
	}
}
