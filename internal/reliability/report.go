// ABOUTME: Evaluates a complete configuration into a single report
// ABOUTME: Chooses probability or MTBF/MTTR mode and derives nines and yearly downtime

package reliability

import (
	"math"
	"time"
)

// Mode identifies which component parameters a configuration supplies.
type Mode string

const (
	ModeProbability Mode = "probability"
	ModeRates       Mode = "rates"
)

// Year is the averaged calendar year used for downtime budgets.
const Year = time.Duration(365.25 * 24 * float64(time.Hour))

// Configuration describes an N-out-of-H system. Set Availability for
// probability mode, or both MTBF and MTTR for rates mode.
type Configuration struct {
	Have         int
	Need         int
	Availability *float64
	MTBF         *float64
	MTTR         *float64
}

// Mode returns the evaluation mode implied by the populated fields.
func (c Configuration) Mode() (Mode, error) {
	switch {
	case c.Availability != nil && (c.MTBF != nil || c.MTTR != nil):
		return "", invalid("configuration", "availability+rates", "set either availability or mtbf/mttr, not both")
	case c.Availability != nil:
		return ModeProbability, nil
	case c.MTBF != nil && c.MTTR != nil:
		return ModeRates, nil
	case c.MTBF != nil:
		return "", invalid("mttr", nil, "required when mtbf is set")
	case c.MTTR != nil:
		return "", invalid("mtbf", nil, "required when mttr is set")
	default:
		return "", invalid("configuration", nil, "availability or mtbf/mttr is required")
	}
}

// Report holds every metric computed for one configuration. MTBF and MTTR
// are only populated in rates mode.
type Report struct {
	Mode            Mode
	Have            int
	Need            int
	Availability    float64
	MTBF            *float64
	MTTR            *float64
	Nines           float64
	DowntimePerYear time.Duration
}

// Evaluate computes the report for c.
func Evaluate(c Configuration) (Report, error) {
	mode, err := c.Mode()
	if err != nil {
		return Report{}, err
	}

	r := Report{Mode: mode, Have: c.Have, Need: c.Need}

	switch mode {
	case ModeProbability:
		r.Availability, err = AvailabilityFromProbability(*c.Availability, c.Have, c.Need)
		if err != nil {
			return Report{}, err
		}
	case ModeRates:
		mtbf, mttr := *c.MTBF, *c.MTTR
		r.Availability, err = AvailabilityFromRates(mtbf, mttr, c.Have, c.Need)
		if err != nil {
			return Report{}, err
		}
		sysMTBF, err := AggregateMTBF(mtbf, mttr, c.Have, c.Need)
		if err != nil {
			return Report{}, err
		}
		sysMTTR, err := AggregateMTTR(mtbf, mttr, c.Have, c.Need)
		if err != nil {
			return Report{}, err
		}
		r.MTBF, r.MTTR = &sysMTBF, &sysMTTR
	}

	r.Nines = Nines(r.Availability)
	r.DowntimePerYear = DowntimePerYear(r.Availability)
	return r, nil
}

// Nines returns -log10(1 - a): 3 for 0.999, +Inf for a perfect system.
func Nines(a float64) float64 {
	if a >= 1 {
		return math.Inf(1)
	}
	return -math.Log10(1 - a)
}

// DowntimePerYear returns the expected unavailable time per averaged year.
func DowntimePerYear(a float64) time.Duration {
	return time.Duration((1 - a) * float64(Year))
}
