// ABOUTME: Typed validation errors for the reliability formulas
// ABOUTME: Rejects out-of-domain arguments up front and reports results that overflow float64

package reliability

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every *InvalidParameterError via errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports an argument outside the domain of a formula.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Is lets callers use errors.Is(err, ErrInvalidParameter).
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ErrOverflow is matched by every *OverflowError via errors.Is.
var ErrOverflow = errors.New("result overflows float64")

// OverflowError reports arguments inside a formula's domain whose
// intermediate sums or result cannot be represented as a finite float64.
// For Combination, Have and Need hold n and k.
type OverflowError struct {
	Op   string
	Have int
	Need int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s with have=%d need=%d: result overflows float64", e.Op, e.Have, e.Need)
}

// Is lets callers use errors.Is(err, ErrOverflow).
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

func overflow(op string, have, need int) error {
	return &OverflowError{Op: op, Have: have, Need: need}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalid(param string, value any, reason string) error {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}

// validateCounts checks a component count pair for the availability formulas.
// need may be zero (a configuration that needs nothing is always up).
func validateCounts(have, need int) error {
	if have < 1 {
		return invalid("have", have, "must be at least 1")
	}
	if need < 0 {
		return invalid("need", need, "must not be negative")
	}
	if need > have {
		return invalid("need", need, fmt.Sprintf("must not exceed have (%d)", have))
	}
	return nil
}

// validateAggregateCounts is validateCounts plus need >= 1, since the shared
// MTBF/MTTR denominator evaluates C(have-1, need-1).
func validateAggregateCounts(have, need int) error {
	if err := validateCounts(have, need); err != nil {
		return err
	}
	if need < 1 {
		return invalid("need", need, "must be at least 1 for MTBF/MTTR")
	}
	return nil
}

func validateProbability(avail float64) error {
	if math.IsNaN(avail) || avail < 0 || avail > 1 {
		return invalid("availability", avail, "must be within [0, 1]")
	}
	return nil
}

func validateRate(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(param, v, "must be a finite number")
	}
	if v <= 0 {
		return invalid(param, v, "must be greater than zero")
	}
	return nil
}

func validateRates(mtbf, mttr float64) error {
	if err := validateRate("mtbf", mtbf); err != nil {
		return err
	}
	return validateRate("mttr", mttr)
}
