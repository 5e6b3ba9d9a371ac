// ABOUTME: Mean time between failure and mean time to repair of a configuration
// ABOUTME: Renewal-theory k-out-of-n formulas sharing one failure-frequency denominator

package reliability

import "math"

// AggregateMTBF returns the mean time between failure of an N-out-of-H
// configuration, in the time unit of mtbf and mttr.
//
//	numerator   = Σ_{i=need}^{have} C(have,i) · mtbf^i · mttr^(have-i)
//	denominator = have · C(have-1, need-1) · mtbf^(need-1) · mttr^(have-need)
func AggregateMTBF(mtbf, mttr float64, have, need int) (float64, error) {
	if err := validateRates(mtbf, mttr); err != nil {
		return 0, err
	}
	if err := validateAggregateCounts(have, need); err != nil {
		return 0, err
	}
	return ratio("aggregate mtbf", binomialSum(mtbf, mttr, have, need, have), failureFrequency(mtbf, mttr, have, need), have, need)
}

// AggregateMTTR returns the mean time to repair of an N-out-of-H
// configuration. The numerator covers the down states i < need; the
// denominator is the one used by AggregateMTBF.
func AggregateMTTR(mtbf, mttr float64, have, need int) (float64, error) {
	if err := validateRates(mtbf, mttr); err != nil {
		return 0, err
	}
	if err := validateAggregateCounts(have, need); err != nil {
		return 0, err
	}
	return ratio("aggregate mttr", binomialSum(mtbf, mttr, have, 0, need-1), failureFrequency(mtbf, mttr, have, need), have, need)
}

// ratio divides num by den, reporting overflow when either operand or the
// quotient leaves the float64 range or den underflowed to zero.
func ratio(op string, num, den float64, have, need int) (float64, error) {
	r := num / den
	if den == 0 || !finite(num, den, r) {
		return 0, overflow(op, have, need)
	}
	return r, nil
}

// failureFrequency is the weight of transitions from the boundary up state
// (exactly need components up) into a down state. MTBF and MTTR both divide
// by it.
func failureFrequency(mtbf, mttr float64, have, need int) float64 {
	return float64(have) * combin(have-1, need-1) *
		math.Pow(mtbf, float64(need-1)) * math.Pow(mttr, float64(have-need))
}
