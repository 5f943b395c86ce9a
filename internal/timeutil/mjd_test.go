package timeutil

import (
	"math"
	"testing"
	"time"
)

func TestMJDToTime(t *testing.T) {
	// MJD 58119 is 2018-01-01T00:00:00 UTC.
	got := MJDToTime(58119)
	want := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MJDToTime(58119) = %v, want %v", got, want)
	}
}

func TestTimeToMJDRoundTrip(t *testing.T) {
	mjds := []float64{0, 58119, 58119.25, 59000.731}
	for _, mjd := range mjds {
		got := TimeToMJD(MJDToTime(mjd))
		if math.Abs(got-mjd) > 1e-9 {
			t.Errorf("round trip of MJD %v = %v", mjd, got)
		}
	}
}

func TestNightMJD(t *testing.T) {
	tests := []struct {
		expMJD float64
		want   int64
	}{
		{58119.0, 58119},
		{58119.73, 58119},
		{58119.9999, 58119},
		{58120.0001, 58120},
	}
	for _, tt := range tests {
		if got := NightMJD(tt.expMJD); got != tt.want {
			t.Errorf("NightMJD(%v) = %d, want %d", tt.expMJD, got, tt.want)
		}
	}
}
