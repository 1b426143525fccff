// ABOUTME: Tests for vector blob encoding and cosine similarity
// ABOUTME: Verifies round-trip encoding and similarity edge cases
package sqlite

import (
	"math"
	"testing"
)

func TestVectorBlobRoundTrip(t *testing.T) {
	vector := []float64{0.1, -0.5, 3.14159, 0, 1e-9}

	decoded := blobToVector(vectorToBlob(vector))

	if len(decoded) != len(vector) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(vector))
	}
	for i := range vector {
		if decoded[i] != vector[i] {
			t.Errorf("decoded[%d] = %v, want %v", i, decoded[i], vector[i])
		}
	}
}

func TestVectorBlobRoundTrip_Empty(t *testing.T) {
	decoded := blobToVector(vectorToBlob(nil))
	if len(decoded) != 0 {
		t.Errorf("decoded length = %d, want 0", len(decoded))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 2, 3},
			want: 1.0,
		},
		{
			name: "orthogonal vectors",
			a:    []float64{1, 0},
			b:    []float64{0, 1},
			want: 0.0,
		},
		{
			name: "opposite vectors",
			a:    []float64{1, 0},
			b:    []float64{-1, 0},
			want: -1.0,
		},
		{
			name: "mismatched lengths",
			a:    []float64{1, 2},
			b:    []float64{1, 2, 3},
			want: 0.0,
		},
		{
			name: "zero vector",
			a:    []float64{0, 0, 0},
			b:    []float64{1, 2, 3},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}
