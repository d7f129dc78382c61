package lowess

import "math"

// tricubeWeights returns one tricube weight per index of the window
// [lo, hi] centered on index center: w = (1 - u^3)^3 for the normalized
// distance u = |x_j - x_center| / delta. The normalizer is the larger
// one-sided window span widened by deltaGuardFactor, so the farthest
// point keeps a positive weight; the center always weighs exactly 1.
// A zero-width window (every window point shares x[center]) weighs all
// points 1.
func tricubeWeights(xs []float64, lo, hi, center int) []float64 {
	weights := make([]float64, hi-lo+1)
	xi := xs[center]

	delta := deltaGuardFactor * math.Max(xs[hi]-xi, xi-xs[lo])
	if delta == 0 {
		for j := range weights {
			weights[j] = 1
		}
		return weights
	}

	for j := lo; j <= hi; j++ {
		u := math.Abs(xs[j]-xi) / delta
		if u >= 1 {
			// floating point drift past the normalizer
			weights[j-lo] = 0
			continue
		}
		w := 1 - u*u*u
		weights[j-lo] = w * w * w
	}
	return weights
}
