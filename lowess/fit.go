package lowess

import (
	"fmt"
	"math"

	"github.com/uyouii/lowess-smoothing/common"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// fitWindow solves the weighted least squares polynomial regression over
// the window [lo, hi] and evaluates the fitted polynomial at xs[center].
// It reads only the sorted arrays and scalar parameters, so per-point
// fits may run concurrently without synchronization.
func fitWindow(xs, ys []float64, lo, hi, center, degree int) (float64, error) {
	if hi == lo {
		// One-point window: the regression degenerates to the input value.
		return ys[center], nil
	}

	weights := tricubeWeights(xs, lo, hi, center)

	if degree == 0 {
		return stat.Mean(ys[lo : hi+1], weights), nil
	}

	// A window spanning fewer distinct x values than coefficients has no
	// unique solution; report it instead of returning a least-norm fit.
	if distinct := countDistinctSorted(xs[lo : hi+1]); distinct < degree+1 {
		return 0, common.NewIndexError(common.ErrorUnderdeterminedWindow, center,
			fmt.Sprintf("%d distinct x values for %d coefficients", distinct, degree+1))
	}

	rows, cols := hi-lo+1, degree+1
	design := mat.NewDense(rows, cols, nil)
	rhs := mat.NewDense(rows, 1, nil)
	for j := 0; j < rows; j++ {
		sigma := math.Sqrt(weights[j])
		for p, pow := 0, 1.0; p < cols; p, pow = p+1, pow*xs[lo+j] {
			design.Set(j, p, sigma*pow)
		}
		rhs.Set(j, 0, sigma*ys[lo+j])
	}

	coeffs := mat.NewDense(cols, 1, nil)
	var qr mat.QR
	qr.Factorize(design)
	if err := qr.SolveTo(coeffs, false, rhs); err != nil {
		return 0, common.NewIndexError(common.ErrorSingularMatrix, center, err.Error())
	}

	// Horner evaluation at the window center.
	fitted := 0.0
	for p := cols - 1; p >= 0; p-- {
		fitted = fitted*xs[center] + coeffs.At(p, 0)
	}
	return fitted, nil
}

// countDistinctSorted counts distinct values in a non-decreasing slice.
func countDistinctSorted(sorted []float64) int {
	if len(sorted) == 0 {
		return 0
	}
	distinct := 1
	for j := 1; j < len(sorted); j++ {
		if sorted[j] != sorted[j-1] {
			distinct++
		}
	}
	return distinct
}
