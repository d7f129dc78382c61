package lowess

const (
	// DefaultBandwidth is the fraction of all points forming a local
	// window, matching STATA's lowess default neighborhood scale.
	DefaultBandwidth = 0.2

	DefaultPolynomialDegree = 1

	// deltaGuardFactor widens the tricube distance normalizer so the
	// farthest window point keeps a positive weight even when the
	// window is one-sided.
	deltaGuardFactor = 1.0001
)
