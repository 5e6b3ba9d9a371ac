// ABOUTME: Data models for single N-out-of-H availability calculations
// ABOUTME: Maps API and batch-file requests onto reliability configurations and reports

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cyan1/Availability/internal/reliability"
)

// CalculationRequest describes one configuration. Set Availability, or both
// MTBF and MTTR.
type CalculationRequest struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Have         int      `json:"have" yaml:"have"`
	Need         int      `json:"need" yaml:"need"`
	Availability *float64 `json:"availability,omitempty" yaml:"availability,omitempty"`
	MTBF         *float64 `json:"mtbf,omitempty" yaml:"mtbf,omitempty"`
	MTTR         *float64 `json:"mttr,omitempty" yaml:"mttr,omitempty"`
}

// Configuration converts the request into the math library's input.
func (r CalculationRequest) Configuration() reliability.Configuration {
	return reliability.Configuration{
		Have:         r.Have,
		Need:         r.Need,
		Availability: r.Availability,
		MTBF:         r.MTBF,
		MTTR:         r.MTTR,
	}
}

// Validate checks that exactly one parameter mode is present. Range checks
// are left to the reliability package.
func (r CalculationRequest) Validate() error {
	_, err := r.Configuration().Mode()
	return err
}

// CacheKey returns a stable key for the request's numeric inputs. Name is
// excluded since it does not affect the result.
func (r CalculationRequest) CacheKey() string {
	return strings.Join([]string{
		"calc",
		strconv.Itoa(r.Have),
		strconv.Itoa(r.Need),
		formatOptional(r.Availability),
		formatOptional(r.MTBF),
		formatOptional(r.MTTR),
	}, ":")
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// CalculationResponse is the JSON form of a reliability.Report.
// Nines is omitted for a perfect (availability 1) configuration.
type CalculationResponse struct {
	Name                 string   `json:"name,omitempty" yaml:"name,omitempty"`
	Mode                 string   `json:"mode" yaml:"mode"`
	Have                 int      `json:"have" yaml:"have"`
	Need                 int      `json:"need" yaml:"need"`
	Availability         float64  `json:"availability" yaml:"availability"`
	MTBF                 *float64 `json:"mtbf,omitempty" yaml:"mtbf,omitempty"`
	MTTR                 *float64 `json:"mttr,omitempty" yaml:"mttr,omitempty"`
	Nines                *float64 `json:"nines,omitempty" yaml:"nines,omitempty"`
	DowntimePerYearHours float64  `json:"downtime_per_year_hours" yaml:"downtime_per_year_hours"`
	DowntimePerYear      string   `json:"downtime_per_year" yaml:"downtime_per_year"`
}

// NewCalculationResponse builds the response for a computed report
func NewCalculationResponse(name string, r reliability.Report) CalculationResponse {
	resp := CalculationResponse{
		Name:                 name,
		Mode:                 string(r.Mode),
		Have:                 r.Have,
		Need:                 r.Need,
		Availability:         r.Availability,
		MTBF:                 r.MTBF,
		MTTR:                 r.MTTR,
		DowntimePerYearHours: r.DowntimePerYear.Hours(),
		DowntimePerYear:      r.DowntimePerYear.String(),
	}
	if !math.IsInf(r.Nines, 0) && !math.IsNaN(r.Nines) {
		nines := r.Nines
		resp.Nines = &nines
	}
	return resp
}

// Label returns the configuration as "need-of-have", e.g. "2-of-3"
func (r CalculationResponse) Label() string {
	return fmt.Sprintf("%d-of-%d", r.Need, r.Have)
}
