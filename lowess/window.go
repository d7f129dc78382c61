package lowess

import "math"

// halfWindow computes the half window size shared by every point of a
// run: k = floor((N*b - 0.5) / 2), never negative. It depends only on
// the point count and the bandwidth, not on the x spacing.
func halfWindow(n int, bandwidth float64) int {
	k := int(math.Floor((float64(n)*bandwidth - 0.5) / 2.0))
	return max(k, 0)
}

// windowBounds clamps [i-k, i+k] to the data bounds. Near the edges the
// window is asymmetric, never reflected or padded, so the smoothed curve
// at the domain extremes leans on the interior neighbors only.
func windowBounds(i, k, n int) (lo, hi int) {
	return max(0, i-k), min(n-1, i+k)
}
