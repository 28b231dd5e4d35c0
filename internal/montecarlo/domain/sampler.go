package domain

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NormalSampler produces an independent stream of standard normal draws.
type NormalSampler interface {
	Next() float64
}

// GaussianSampler draws from N(0,1) using its own rand engine.
// The engine is owned by exactly one worker and never crosses a
// goroutine boundary, so concurrent workers need no locking.
type GaussianSampler struct {
	rng *rand.Rand
}

// NewGaussianSampler seeds the engine from the OS entropy source.
func NewGaussianSampler() *GaussianSampler {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return NewSeededGaussianSampler(time.Now().UnixNano())
	}
	return NewSeededGaussianSampler(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewSeededGaussianSampler 使用固定种子，便于测试复现
func NewSeededGaussianSampler(seed int64) *GaussianSampler {
	return &GaussianSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *GaussianSampler) Next() float64 {
	return s.rng.NormFloat64()
}
