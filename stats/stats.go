// Package stats has the small numeric helpers the autoplay reports use.
package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance (Welford's algorithm), for
// streams too long to keep in memory, like every turn of a long autoplay.
type Statistic struct {
	n    int
	mean float64
	m2   float64
	max  float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 || val > s.max {
		s.max = val
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the sample variance; zero until there are two values.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// Max is the largest value pushed, or zero.
func (s *Statistic) Max() float64 {
	return s.max
}

func (s *Statistic) Count() int {
	return s.n
}
