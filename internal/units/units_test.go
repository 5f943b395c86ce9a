package units

import (
	"math"
	"testing"
)

func TestRadiansToDegrees(t *testing.T) {
	tests := []struct {
		name string
		rad  float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi", math.Pi, 180},
		{"half pi", math.Pi / 2, 90},
		{"negative", -math.Pi / 4, -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadiansToDegrees(tt.rad)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RadiansToDegrees(%v) = %v, want %v", tt.rad, got, tt.want)
			}
		})
	}
}

func TestSecondsToHours(t *testing.T) {
	if got := SecondsToHours(5400); got != 1.5 {
		t.Errorf("SecondsToHours(5400) = %v, want 1.5", got)
	}
	if got := SecondsToHours(0); got != 0 {
		t.Errorf("SecondsToHours(0) = %v, want 0", got)
	}
}
