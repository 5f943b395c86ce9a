// Package astro estimates per-night astronomical darkness at an observing site.
package astro

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/dfrostig/ztf-sim/internal/timeutil"
)

// twilightElevation is the solar elevation in degrees below which the
// sky counts as astronomically dark.
const twilightElevation = -18.0

// Site is an observing site located by geographic coordinates.
type Site struct {
	Name      string
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
}

// NightlyDarkness returns the hours of astronomical darkness for each
// calendar night, identified by its integer MJD. A night where the sun
// never crosses the twilight elevation yields NaN.
func (s Site) NightlyDarkness(nights []int64) []float64 {
	hours := make([]float64, len(nights))
	for i, night := range nights {
		hours[i] = s.darknessHours(night)
	}
	return hours
}

// darknessHours spans evening twilight end on the given night to
// morning twilight start on the following one.
func (s Site) darknessHours(night int64) float64 {
	evening := timeutil.MJDToTime(float64(night))
	morning := evening.Add(24 * time.Hour)

	_, dusk := sunrise.TimeOfElevation(
		s.Latitude, s.Longitude, twilightElevation,
		evening.Year(), evening.Month(), evening.Day())
	dawn, _ := sunrise.TimeOfElevation(
		s.Latitude, s.Longitude, twilightElevation,
		morning.Year(), morning.Month(), morning.Day())

	if dusk.IsZero() || dawn.IsZero() {
		return math.NaN()
	}
	return dawn.Sub(dusk).Hours()
}
