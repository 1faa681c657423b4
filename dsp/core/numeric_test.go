package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero must equal zero with default epsilon")
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestNewtonSqrt(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		iterations int
		want       float64
	}{
		{name: "no steps", x: 7, iterations: 0, want: 1},
		{name: "one step", x: 7, iterations: 1, want: 4},
		{name: "two steps", x: 7, iterations: 2, want: 2.875},
		{name: "three steps", x: 7, iterations: 3, want: 2.654891304347826},
		{name: "perfect square", x: 4, iterations: 30, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewtonSqrt(tt.x, tt.iterations)
			if !NearlyEqual(got, tt.want, 1e-15) {
				t.Fatalf("NewtonSqrt(%v, %d) = %.17g, want %.17g", tt.x, tt.iterations, got, tt.want)
			}
		})
	}

	if NearlyEqual(NewtonSqrt(7, 3), math.Sqrt(7), 1e-6) {
		t.Fatal("three steps should not reach the exact root")
	}
}
