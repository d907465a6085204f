package valuation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// percentile uses linear interpolation over the sorted sample, matching the
// convention of the calibration tooling: index p*(n-1), interpolated between
// the neighbouring order statistics. sorted must be pre-sorted ASC; p is a
// fraction (0.05 = 5th percentile).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// tailMean returns the mean of all values <= cutoff (Conditional VaR when
// cutoff is the VaR quantile). An empty tail is a defined degenerate case
// and yields NaN, never a division by zero.
func tailMean(values []float64, cutoff float64) float64 {
	sum := 0.0
	count := 0
	for _, v := range values {
		if v <= cutoff {
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// dominance returns the fraction of trials where nev strictly exceeds the
// baseline's NEV, evaluated trial-by-trial on the paired vectors.
func dominance(nev, baseline []float64) float64 {
	wins := 0
	for i, v := range nev {
		if v > baseline[i] {
			wins++
		}
	}
	return float64(wins) / float64(len(nev))
}

// summarize computes the risk statistics row for one NEV distribution.
// baseline is nil for the baseline strategy itself, where the dominance
// probability is undefined (NaN).
func summarize(nev, baseline []float64) (eu, var5, cvar5, pBeats float64) {
	sorted := make([]float64, len(nev))
	copy(sorted, nev)
	sort.Float64s(sorted)

	eu = stat.Mean(nev, nil)
	var5 = percentile(sorted, 0.05)
	cvar5 = tailMean(nev, var5)

	if baseline == nil {
		pBeats = math.NaN()
	} else {
		pBeats = dominance(nev, baseline)
	}
	return eu, var5, cvar5, pBeats
}
