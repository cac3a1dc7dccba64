package bench

import (
	"math"

	"golang.org/x/exp/rand"
)

// DefaultMaxSize clamps sampled trial lengths.
const DefaultMaxSize = 1_000_000

// Sampler draws trial lengths from an exponential distribution whose rate
// is chosen so that 90% of the samples are below the typical size:
// lambda = -ln(0.1) / typicalSize. A Sampler is not goroutine-safe; each
// worker owns one.
type Sampler struct {
	rng     *rand.Rand
	lambda  float64
	maxSize int
}

// NewSampler returns a Sampler for typicalSize whose samples never exceed
// maxSize. A maxSize of zero selects DefaultMaxSize.
func NewSampler(typicalSize, maxSize int, seed uint64) *Sampler {
	if typicalSize < 1 {
		typicalSize = 1
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Sampler{
		rng:     rand.New(rand.NewSource(seed)),
		lambda:  -math.Log(0.1) / float64(typicalSize),
		maxSize: maxSize,
	}
}

// Next returns the next trial length.
func (s *Sampler) Next() int {
	u := s.rng.Float64()
	if u == 0 {
		return s.maxSize
	}
	x := -math.Log(u) / s.lambda
	if x >= float64(s.maxSize) {
		return s.maxSize
	}
	return int(x)
}
