// ABOUTME: Binomial coefficient helper shared by every N-out-of-H formula
// ABOUTME: Computes n!/(k!(n-k)!) from explicit factorials in float64

// Package reliability implements closed-form availability, MTBF and MTTR
// formulas for N-out-of-H redundant configurations of identical,
// independent components.
//
// Every function is pure: no shared state, no I/O, safe for concurrent use.
// Invalid arguments return *InvalidParameterError and results that leave the
// float64 range return *OverflowError, so the combination, availability, MTBF
// and MTTR functions never return NaN or Inf.
package reliability

// Combination returns the number of ways to choose k items from n.
//
// The value is computed from explicit factorials, so it is exact for n up to
// about 20 and loses precision beyond that. 171! overflows float64, so any
// n above 170 returns *OverflowError.
func Combination(n, k int) (float64, error) {
	if n < 0 {
		return 0, invalid("n", n, "must not be negative")
	}
	if k < 0 {
		return 0, invalid("k", k, "must not be negative")
	}
	if k > n {
		return 0, invalid("k", k, "must not exceed n")
	}
	c := combin(n, k)
	if !finite(c) {
		return 0, overflow("combination", n, k)
	}
	return c, nil
}

// combin is Combination without validation; callers guarantee 0 <= k <= n.
func combin(n, k int) float64 {
	return factorial(n) / factorial(k) / factorial(n-k)
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
