package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "nan", value: math.NaN(), min: 0, max: 1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite misclassified a value")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if db := LinearPowerToDB(100); !NearlyEqual(db, 20, 1e-3) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", db)
	}
	if db := LinearPowerToDB(0.5); !NearlyEqual(db, -3.0103, 1e-3) {
		t.Fatalf("LinearPowerToDB(0.5) = %v, want -3.01", db)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsInf(LinearPowerToDB(math.Inf(1)), 1) {
		t.Fatal("expected +Inf for +Inf")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
