// ABOUTME: Tests for the binomial coefficient helper
// ABOUTME: Verifies known values, symmetry, edges and argument validation

package reliability

import (
	"errors"
	"math"
	"testing"
)

// almostEqual returns true if a and b are within epsilon of each other,
// relative to their magnitude once they exceed 1.
func almostEqual(a, b, epsilon float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= epsilon*scale
}

func TestCombination_KnownValues(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{3, 2, 3},
		{5, 2, 10},
		{10, 3, 120},
		{20, 10, 184756},
		{30, 15, 155117520},
	}

	for _, tc := range tests {
		got, err := Combination(tc.n, tc.k)
		if err != nil {
			t.Fatalf("Combination(%d, %d) unexpected error: %v", tc.n, tc.k, err)
		}
		if !almostEqual(got, tc.want, 1e-12) {
			t.Errorf("Combination(%d, %d) = %v, want %v", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestCombination_Symmetry(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for k := 0; k <= n; k++ {
			a, err := Combination(n, k)
			if err != nil {
				t.Fatalf("Combination(%d, %d): %v", n, k, err)
			}
			b, err := Combination(n, n-k)
			if err != nil {
				t.Fatalf("Combination(%d, %d): %v", n, n-k, err)
			}
			if !almostEqual(a, b, 1e-12) {
				t.Errorf("Combination(%d, %d) = %v but Combination(%d, %d) = %v", n, k, a, n, n-k, b)
			}
		}
	}
}

func TestCombination_Edges(t *testing.T) {
	for n := 0; n <= 25; n++ {
		if got, _ := Combination(n, 0); got != 1 {
			t.Errorf("Combination(%d, 0) = %v, want 1", n, got)
		}
		if got, _ := Combination(n, n); got != 1 {
			t.Errorf("Combination(%d, %d) = %v, want 1", n, n, got)
		}
	}
}

func TestCombination_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		n, k      int
		wantParam string
	}{
		{"negative n", -1, 0, "n"},
		{"negative k", 3, -1, "k"},
		{"k greater than n", 3, 4, "k"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Combination(tc.n, tc.k)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected *InvalidParameterError, got %T", err)
			}
			if ipe.Param != tc.wantParam {
				t.Errorf("Param = %q, want %q", ipe.Param, tc.wantParam)
			}
		})
	}
}

func TestCombination_Overflow(t *testing.T) {
	tests := []struct {
		name string
		n, k int
	}{
		{"factorial past 170", 171, 0},
		{"large n and k", 300, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Combination(tc.n, tc.k)
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("Combination(%d, %d) = %v, %v; want ErrOverflow", tc.n, tc.k, got, err)
			}
			if errors.Is(err, ErrInvalidParameter) {
				t.Errorf("overflow should not match ErrInvalidParameter")
			}
		})
	}

	got, err := Combination(170, 85)
	if err != nil {
		t.Fatalf("Combination(170, 85) unexpected error: %v", err)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) || got <= 0 {
		t.Errorf("Combination(170, 85) = %v, want a finite positive value", got)
	}
}
