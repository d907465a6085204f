package cashflow

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyCashflows is returned when a cashflow series has no trials or no
// years. The typed matrix API makes higher ranks unrepresentable; a
// zero-sized dimension is the remaining contract violation.
var ErrEmptyCashflows = errors.New("cashflow series has a zero dimension")

// Factors returns the discount factor vector 1/(1+k)^i for years i = 1..t.
func Factors(t int, k float64) []float64 {
	f := make([]float64, t)
	for i := range f {
		f[i] = 1 / math.Pow(1+k, float64(i+1))
	}
	return f
}

// NPV discounts a trials x years cashflow matrix at rate k and returns the
// per-trial NPV vector. Only the year axis is reduced; trials stay
// independent.
func NPV(cf mat.Matrix, k float64) (*mat.VecDense, error) {
	n, t := cf.Dims()
	if n == 0 || t == 0 {
		return nil, fmt.Errorf("discount %dx%d matrix: %w", n, t, ErrEmptyCashflows)
	}

	factors := mat.NewVecDense(t, Factors(t, k))
	out := mat.NewVecDense(n, nil)
	out.MulVec(cf, factors)
	return out, nil
}

// NPVSeries discounts a single deterministic per-year cashflow series to a
// scalar NPV. Produces bit-for-bit the same figure as NPV on a 1 x T matrix.
func NPVSeries(cf []float64, k float64) (float64, error) {
	if len(cf) == 0 {
		return 0, fmt.Errorf("discount empty series: %w", ErrEmptyCashflows)
	}
	return floats.Dot(cf, Factors(len(cf), k)), nil
}
