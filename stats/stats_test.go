package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
		max    float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 124},
		{[]int{1}, 1, 0, 1},
		{[]int{}, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1},
		{[]int{-5, -3}, -4, 1.4142135623731, -3},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.True(FuzzyEqual(s.Max(), c.max))
		is.Equal(s.Count(), len(c.scores))
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489))
}

func TestWinInterval(t *testing.T) {
	is := is.New(t)
	lo, hi := WinInterval(50, 100, 95)
	is.True(FuzzyEqual(lo, 0.5-0.0979981992270027))
	is.True(FuzzyEqual(hi, 0.5+0.0979981992270027))

	lo, hi = WinInterval(10, 10, 95)
	is.Equal(lo, 1.0)
	is.Equal(hi, 1.0)

	lo, hi = WinInterval(0, 0, 95)
	is.Equal(lo, 0.0)
	is.Equal(hi, 1.0)
}
