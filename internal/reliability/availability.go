// ABOUTME: System availability of an N-out-of-H configuration
// ABOUTME: Binomial sums over component availability or over raw MTBF/MTTR weights

package reliability

import "math"

// AvailabilityFromProbability returns the probability that at least need of
// have identical components are up, each being up with probability avail.
//
//	sum1 = Σ_{i=need}^{have} C(have,i) · avail^i · (1-avail)^(have-i)
//	sum2 = Σ_{i=0}^{have}    C(have,i) · avail^i · (1-avail)^(have-i)
//	result = sum1 / sum2
//
// sum2 is 1 in exact arithmetic; dividing by it absorbs summation drift.
func AvailabilityFromProbability(avail float64, have, need int) (float64, error) {
	if err := validateProbability(avail); err != nil {
		return 0, err
	}
	if err := validateCounts(have, need); err != nil {
		return 0, err
	}
	a, ok := binomialRatio(avail, 1-avail, have, need)
	if !ok {
		return 0, overflow("availability", have, need)
	}
	return a, nil
}

// AvailabilityFromRates returns the availability of the configuration from
// a single component's MTBF and MTTR. It uses the same two-sum structure as
// AvailabilityFromProbability with mtbf and mttr as the up and down weights,
// which is equivalent to avail = mtbf / (mtbf + mttr).
//
// The raw weights are raised to the power have, so realistic hour values
// overflow well below have = 170 (8760^90 is past 1e308). Those inputs
// return *OverflowError.
func AvailabilityFromRates(mtbf, mttr float64, have, need int) (float64, error) {
	if err := validateRates(mtbf, mttr); err != nil {
		return 0, err
	}
	if err := validateCounts(have, need); err != nil {
		return 0, err
	}
	a, ok := binomialRatio(mtbf, mttr, have, need)
	if !ok {
		return 0, overflow("availability", have, need)
	}
	return a, nil
}

// binomialRatio returns sum1/sum2 and false when either sum or the ratio is
// not finite. Large weights raised to large powers overflow to +Inf, and
// Inf/Inf is NaN.
func binomialRatio(up, down float64, have, need int) (float64, bool) {
	sum1 := binomialSum(up, down, have, need, have)
	sum2 := binomialSum(up, down, have, 0, have)
	r := sum1 / sum2
	return r, finite(sum1, sum2, r)
}

// binomialSum adds C(have,i) · up^i · down^(have-i) for i in [from, to].
func binomialSum(up, down float64, have, from, to int) float64 {
	sum := 0.0
	for i := from; i <= to; i++ {
		sum += binomialTerm(up, down, have, i)
	}
	return sum
}

func binomialTerm(up, down float64, have, i int) float64 {
	return combin(have, i) * math.Pow(up, float64(i)) * math.Pow(down, float64(have-i))
}
