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
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon to apply")
	}
}

func TestIsClose(t *testing.T) {
	tests := []struct {
		name       string
		a, d       float64
		rtol, atol float64
		want       bool
	}{
		{name: "exact", a: 1, d: 1, want: true},
		{name: "relative", a: 100.00001, d: 100, rtol: 1e-6, want: true},
		{name: "relative-fail", a: 100.001, d: 100, rtol: 1e-6, want: false},
		{name: "absolute", a: 1e-9, d: 0, atol: 1e-8, want: true},
		{name: "zero-rtol-only", a: 1e-9, d: 0, rtol: 1, want: false},
		{name: "inf", a: math.Inf(1), d: math.Inf(1), want: true},
		{name: "inf-sign", a: math.Inf(1), d: math.Inf(-1), rtol: 1, want: false},
		{name: "nan", a: math.NaN(), d: math.NaN(), rtol: 1, atol: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClose(tt.a, tt.d, tt.rtol, tt.atol); got != tt.want {
				t.Fatalf("IsClose(%v, %v, %v, %v) = %v, want %v", tt.a, tt.d, tt.rtol, tt.atol, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite misclassified a value")
	}
}
