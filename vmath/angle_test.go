package vmath

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Inside", 1.5, 1.5},
		{"Exactly one turn", TwoPi, 0},
		{"Just past one turn", TwoPi + 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Below", -1, 0.3, 1, 0.3},
		{"Above", 1.5, 0.3, 1, 1},
		{"Inside", 0.7, 0.3, 1, 0.7},
		{"Boundary", 0.3, 0.3, 1, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPolar(t *testing.T) {
	x, y := Polar(96, 0)
	if x != 96 || y != 0 {
		t.Errorf("Expected (96, 0), got (%v, %v)", x, y)
	}
	x, y = Polar(10, math.Pi/2)
	if math.Abs(x) > 1e-12 || math.Abs(y-10) > 1e-12 {
		t.Errorf("Expected (0, 10), got (%v, %v)", x, y)
	}
}
