// internal/stats/binomial.go
package stats

import "gonum.org/v1/gonum/stat/distuv"

// ProportionCI returns the exact (Clopper-Pearson) confidence interval for a
// binomial proportion with x successes out of n trials, on the [0,1] scale.
// Bounds come from Beta-distribution quantiles:
//
//	lower = BetaInv(alpha/2;   x,   n-x+1)
//	upper = BetaInv(1-alpha/2; x+1, n-x)
//
// with lower pinned to 0 when x == 0 and upper pinned to 1 when x == n.
// Zero trials carry no information: the interval is (0, 1).
func ProportionCI(x, n int, confidence float64) (lower, upper float64) {
	if n <= 0 {
		return 0, 1
	}
	alpha := 1 - confidence
	if x > 0 {
		lower = distuv.Beta{Alpha: float64(x), Beta: float64(n - x + 1)}.Quantile(alpha / 2)
	}
	upper = 1
	if x < n {
		upper = distuv.Beta{Alpha: float64(x + 1), Beta: float64(n - x)}.Quantile(1 - alpha/2)
	}
	return lower, upper
}
