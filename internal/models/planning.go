// ABOUTME: Data models for sweeps, batches and redundancy recommendations
// ABOUTME: Multi-configuration requests built on top of CalculationRequest

package models

import "github.com/cyan1/Availability/internal/reliability"

// ComponentParams are the per-component inputs shared by every configuration
// in a sweep or recommendation.
type ComponentParams struct {
	Availability *float64 `json:"availability,omitempty" yaml:"availability,omitempty"`
	MTBF         *float64 `json:"mtbf,omitempty" yaml:"mtbf,omitempty"`
	MTTR         *float64 `json:"mttr,omitempty" yaml:"mttr,omitempty"`
}

// Request returns a CalculationRequest for the given counts
func (p ComponentParams) Request(have, need int) CalculationRequest {
	return CalculationRequest{
		Have:         have,
		Need:         need,
		Availability: p.Availability,
		MTBF:         p.MTBF,
		MTTR:         p.MTTR,
	}
}

// SweepRequest evaluates every need in 1..Have for the same components
type SweepRequest struct {
	ComponentParams `yaml:",inline"`
	Have            int `json:"have" yaml:"have"`
}

// SweepResponse lists results ordered by need
type SweepResponse struct {
	Have    int                   `json:"have"`
	Mode    string                `json:"mode"`
	Results []CalculationResponse `json:"results"`
}

// BatchRequest is the body of a batch call and the layout of a batch file
type BatchRequest struct {
	Configurations []CalculationRequest `json:"configurations" yaml:"configurations"`
}

// BatchItem holds either the result or the error for one configuration
type BatchItem struct {
	Request CalculationRequest   `json:"request"`
	Result  *CalculationResponse `json:"result,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// BatchResponse collects every item in request order
type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// RecommendRequest asks for the smallest have meeting Target for a fixed need
type RecommendRequest struct {
	ComponentParams `yaml:",inline"`
	Need            int     `json:"need" yaml:"need"`
	Target          float64 `json:"target" yaml:"target"`
	MaxHave         int     `json:"max_have,omitempty" yaml:"max_have,omitempty"` // default: need + 10
}

// Validate checks the recommendation-specific fields
func (r RecommendRequest) Validate() error {
	if r.Target <= 0 || r.Target >= 1 {
		return &reliability.InvalidParameterError{Param: "target", Value: r.Target, Reason: "must be within (0, 1)"}
	}
	if r.Need < 1 {
		return &reliability.InvalidParameterError{Param: "need", Value: r.Need, Reason: "must be at least 1"}
	}
	if r.MaxHave != 0 && r.MaxHave < r.Need {
		return &reliability.InvalidParameterError{Param: "max_have", Value: r.MaxHave, Reason: "must not be less than need"}
	}
	return r.Request(r.Need, r.Need).Validate()
}

// RecommendResponse reports the chosen configuration, or the best one
// evaluated when the target could not be met
type RecommendResponse struct {
	Target float64             `json:"target"`
	Met    bool                `json:"met"`
	Result CalculationResponse `json:"result"`
}
