// Package units provides shared constants and conversions for angles and durations.
package units

import "math"

// Conversion constants.
const (
	SecondsPerHour = 3600.0
	HoursPerDay    = 24.0
	DegPerRad      = 180.0 / math.Pi
)

// RadiansToDegrees converts an angle from radians to degrees.
// Slew distances are stored in radians in the pointing log.
func RadiansToDegrees(rad float64) float64 {
	return rad * DegPerRad
}

// SecondsToHours converts a duration in seconds to hours.
func SecondsToHours(s float64) float64 {
	return s / SecondsPerHour
}
