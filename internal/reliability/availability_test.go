// ABOUTME: Tests for configuration availability formulas
// ABOUTME: Covers closed-form identities, the 2-of-3 scenario and rate/probability equivalence

package reliability

import (
	"errors"
	"math"
	"testing"
)

func TestAvailabilityFromProbability_TwoOfThree(t *testing.T) {
	// 3·0.9²·0.1 + 0.9³ = 0.243 + 0.729 = 0.972
	got, err := AvailabilityFromProbability(0.9, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.972, 1e-12) {
		t.Errorf("AvailabilityFromProbability(0.9, 3, 2) = %.15f, want 0.972", got)
	}
}

func TestAvailabilityFromProbability_AllRequired(t *testing.T) {
	for _, a := range []float64{0.1, 0.5, 0.9, 0.99, 0.999} {
		for have := 1; have <= 8; have++ {
			got, err := AvailabilityFromProbability(a, have, have)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := math.Pow(a, float64(have))
			if !almostEqual(got, want, 1e-12) {
				t.Errorf("a=%v have=%d need=%d: got %v, want %v", a, have, have, got, want)
			}
		}
	}
}

func TestAvailabilityFromProbability_OneRequired(t *testing.T) {
	for _, a := range []float64{0.1, 0.5, 0.9, 0.99} {
		for have := 1; have <= 8; have++ {
			got, err := AvailabilityFromProbability(a, have, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := 1 - math.Pow(1-a, float64(have))
			if !almostEqual(got, want, 1e-12) {
				t.Errorf("a=%v have=%d need=1: got %v, want %v", a, have, got, want)
			}
		}
	}
}

func TestAvailabilityFromProbability_Range(t *testing.T) {
	for _, a := range []float64{0.01, 0.25, 0.5, 0.75, 0.95, 0.9999} {
		for have := 1; have <= 12; have++ {
			for need := 1; need <= have; need++ {
				got, err := AvailabilityFromProbability(a, have, need)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got < 0 || got > 1+1e-12 {
					t.Errorf("a=%v have=%d need=%d: %v outside [0,1]", a, have, need, got)
				}
			}
		}
	}
}

func TestAvailabilityFromProbability_MonotonicInNeed(t *testing.T) {
	prev := 1.0
	for need := 1; need <= 6; need++ {
		got, _ := AvailabilityFromProbability(0.8, 6, need)
		if got > prev+1e-12 {
			t.Errorf("need=%d: availability %v increased from %v", need, got, prev)
		}
		prev = got
	}
}

func TestAvailabilityFromProbability_Edges(t *testing.T) {
	tests := []struct {
		name       string
		avail      float64
		have, need int
		want       float64
	}{
		{"never up", 0, 3, 2, 0},
		{"never up, nothing needed", 0, 3, 0, 1},
		{"always up", 1, 3, 2, 1},
		{"nothing needed", 0.4, 5, 0, 1},
		{"single component", 0.42, 1, 1, 0.42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AvailabilityFromProbability(tc.avail, tc.have, tc.need)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tc.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAvailabilityFromProbability_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		avail      float64
		have, need int
		wantParam  string
	}{
		{"need exceeds have", 0.9, 3, 4, "need"},
		{"no components", 0.9, 0, 0, "have"},
		{"negative need", 0.9, 3, -1, "need"},
		{"negative availability", -0.1, 3, 2, "availability"},
		{"availability above one", 1.5, 3, 2, "availability"},
		{"NaN availability", math.NaN(), 3, 2, "availability"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AvailabilityFromProbability(tc.avail, tc.have, tc.need)
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected *InvalidParameterError, got %v", err)
			}
			if ipe.Param != tc.wantParam {
				t.Errorf("Param = %q, want %q", ipe.Param, tc.wantParam)
			}
		})
	}
}

func TestAvailabilityFromRates_MatchesProbability(t *testing.T) {
	rates := []struct{ mtbf, mttr float64 }{
		{100, 5},
		{1000, 1},
		{8760, 24},
		{2.5, 2.5},
		{50000, 72},
	}

	for _, r := range rates {
		a := r.mtbf / (r.mtbf + r.mttr)
		for have := 1; have <= 8; have++ {
			for need := 0; need <= have; need++ {
				fromRates, err := AvailabilityFromRates(r.mtbf, r.mttr, have, need)
				if err != nil {
					t.Fatalf("AvailabilityFromRates: %v", err)
				}
				fromProb, err := AvailabilityFromProbability(a, have, need)
				if err != nil {
					t.Fatalf("AvailabilityFromProbability: %v", err)
				}
				if !almostEqual(fromRates, fromProb, 1e-12) {
					t.Errorf("mtbf=%v mttr=%v have=%d need=%d: rates %v != probability %v",
						r.mtbf, r.mttr, have, need, fromRates, fromProb)
				}
			}
		}
	}
}

func TestAvailabilityFromRates_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		mtbf, mttr float64
		have, need int
		wantParam  string
	}{
		{"need exceeds have", 100, 5, 3, 4, "need"},
		{"zero mtbf", 0, 5, 3, 2, "mtbf"},
		{"negative mttr", 100, -5, 3, 2, "mttr"},
		{"infinite mtbf", math.Inf(1), 5, 3, 2, "mtbf"},
		{"no components", 100, 5, 0, 0, "have"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AvailabilityFromRates(tc.mtbf, tc.mttr, tc.have, tc.need)
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected *InvalidParameterError, got %v", err)
			}
			if ipe.Param != tc.wantParam {
				t.Errorf("Param = %q, want %q", ipe.Param, tc.wantParam)
			}
		})
	}
}

func TestAvailabilityFromRates_Overflow(t *testing.T) {
	tests := []struct {
		name       string
		mtbf, mttr float64
		have, need int
	}{
		{"yearly mtbf with 90 components", 8760, 4, 90, 2},
		{"maximum components", 8760, 24, 170, 85},
		{"huge weights", 1e200, 1e200, 3, 2},
		{"weights underflow to zero", 1e-200, 1e-200, 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AvailabilityFromRates(tc.mtbf, tc.mttr, tc.have, tc.need)
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("got %v, %v; want ErrOverflow", got, err)
			}
			var oe *OverflowError
			if !errors.As(err, &oe) || oe.Have != tc.have || oe.Need != tc.need {
				t.Errorf("expected *OverflowError for have=%d need=%d, got %#v", tc.have, tc.need, err)
			}
		})
	}
}

func TestAvailabilityFromProbability_MaximumComponents(t *testing.T) {
	got, err := AvailabilityFromProbability(0.9, 170, 85)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 0 || got > 1+1e-12 {
		t.Errorf("got %v, want a value in [0, 1]", got)
	}

	if _, err := AvailabilityFromProbability(0.9, 171, 85); !errors.Is(err, ErrOverflow) {
		t.Errorf("have=171: expected ErrOverflow, got %v", err)
	}
}

// Every accepted input yields a finite availability in [0, 1] or ErrOverflow.
func TestAvailabilityFromRates_FiniteOrOverflow(t *testing.T) {
	rates := []struct{ mtbf, mttr float64 }{
		{100, 5},
		{8760, 4},
		{50000, 72},
		{0.5, 0.01},
	}

	for _, r := range rates {
		for have := 1; have <= 170; have++ {
			for _, need := range []int{0, 1, (have + 1) / 2, have} {
				got, err := AvailabilityFromRates(r.mtbf, r.mttr, have, need)
				if err != nil {
					if !errors.Is(err, ErrOverflow) {
						t.Fatalf("mtbf=%v mttr=%v have=%d need=%d: unexpected error %v", r.mtbf, r.mttr, have, need, err)
					}
					continue
				}
				if math.IsNaN(got) || got < 0 || got > 1+1e-12 {
					t.Fatalf("mtbf=%v mttr=%v have=%d need=%d: got %v", r.mtbf, r.mttr, have, need, got)
				}
			}
		}
	}
}
