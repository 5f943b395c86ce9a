// Package timeutil provides Modified Julian Date conversions and
// calendar-night helpers for survey timestamps.
package timeutil

import (
	"math"
	"time"
)

// mjdEpoch is 1858-11-17T00:00:00 UTC, the zero point of the
// Modified Julian Date scale.
var mjdEpoch = time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)

// MJDToTime converts a Modified Julian Date to a UTC time.
func MJDToTime(mjd float64) time.Time {
	return mjdEpoch.Add(time.Duration(mjd * 24 * float64(time.Hour)))
}

// TimeToMJD converts a UTC time to a Modified Julian Date.
func TimeToMJD(t time.Time) float64 {
	return t.Sub(mjdEpoch).Hours() / 24
}

// NightMJD returns the integer calendar night containing an exposure
// start time, i.e. floor of the exposure MJD.
func NightMJD(expMJD float64) int64 {
	return int64(math.Floor(expMJD))
}
