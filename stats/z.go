package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	area := (1 + (confidenceInterval / 100)) / 2
	return distuv.UnitNormal.Quantile(area)
}

// WinInterval is the normal-approximation confidence interval for a win
// rate, clamped to [0, 1]. Ties count as half a win.
func WinInterval(wins float64, games int, confidenceInterval float64) (float64, float64) {
	if games == 0 {
		return 0, 1
	}
	p := wins / float64(games)
	half := ZVal(confidenceInterval) * math.Sqrt(p*(1-p)/float64(games))
	return math.Max(0, p-half), math.Min(1, p+half)
}
