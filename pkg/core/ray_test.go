package core

import "testing"

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 2, -1))

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 2, 3)},
		{1, NewVec3(1, 4, 2)},
		{-0.5, NewVec3(1, 1, 3.5)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); !got.Equals(tt.expected) {
			t.Errorf("At(%g) = %v, want %v", tt.t, got, tt.expected)
		}
	}
}
