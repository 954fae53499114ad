package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(0.0, 1.0)

	tests := []struct {
		name      string
		value     float64
		contains  bool
		surrounds bool
	}{
		{"below", -0.5, false, false},
		{"at min", 0.0, true, false},
		{"inside", 0.5, true, true},
		{"at max", 1.0, true, false},
		{"above", 1.5, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.value); got != tt.contains {
				t.Errorf("Contains(%f) = %t, want %t", tt.value, got, tt.contains)
			}
			if got := interval.Surrounds(tt.value); got != tt.surrounds {
				t.Errorf("Surrounds(%f) = %t, want %t", tt.value, got, tt.surrounds)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0.0, 0.999)

	tests := []struct {
		value    float64
		expected float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{1, 0.999},
		{math.Inf(1), 0.999},
	}

	for _, tt := range tests {
		if got := interval.Clamp(tt.value); got != tt.expected {
			t.Errorf("Clamp(%f) = %f, want %f", tt.value, got, tt.expected)
		}
	}
}

func TestInterval_Generic(t *testing.T) {
	bytes := NewInterval(0, 255)
	if got := bytes.Clamp(300); got != 255 {
		t.Errorf("Clamp(300) = %d, want 255", got)
	}
	if !bytes.Contains(0) || bytes.Surrounds(0) {
		t.Error("Integer interval bounds handled incorrectly")
	}
}

func TestInterval_SurroundsInterval(t *testing.T) {
	outer := NewInterval(0.0, 10.0)

	if !outer.SurroundsInterval(NewInterval(1.0, 9.0)) {
		t.Error("Expected [1, 9] to be surrounded by [0, 10]")
	}
	if outer.SurroundsInterval(NewInterval(0.0, 9.0)) {
		t.Error("Shared lower bound should not count as surrounded")
	}
	if outer.SurroundsInterval(NewInterval(5.0, 11.0)) {
		t.Error("Overlapping interval should not count as surrounded")
	}
}

func TestInterval_WithMax(t *testing.T) {
	shrunk := HitRange.WithMax(2.5)
	if shrunk.Min != HitRange.Min || shrunk.Max != 2.5 {
		t.Errorf("Expected [%f, 2.5], got [%f, %f]", HitRange.Min, shrunk.Min, shrunk.Max)
	}
	if !math.IsInf(HitRange.Max, 1) {
		t.Error("WithMax must not modify the original interval")
	}
}
