package domain

import (
	"math"
	"testing"
)

func TestGaussianSampler_MeanAndVariance(t *testing.T) {
	const n = 200000
	s := NewSeededGaussianSampler(7)

	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		z := s.Next()
		sum += z
		sumSq += z * z
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	if math.Abs(mean) > 0.02 {
		t.Fatalf("mean too far from 0: %v", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Fatalf("variance too far from 1: %v", variance)
	}
}

func TestGaussianSampler_SeedDeterminism(t *testing.T) {
	a := NewSeededGaussianSampler(123)
	b := NewSeededGaussianSampler(123)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed must produce identical streams (draw %d)", i)
		}
	}
}

func TestGaussianSampler_IndependentStreams(t *testing.T) {
	a := NewSeededGaussianSampler(1)
	b := NewSeededGaussianSampler(2)
	identical := true
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			identical = false
			break
		}
	}
	if identical {
		t.Fatalf("different seeds produced identical streams")
	}
}
