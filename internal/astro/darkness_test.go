package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var palomar = Site{Name: "Palomar", Latitude: 33.3563, Longitude: -116.8650}

func TestNightlyDarknessWinter(t *testing.T) {
	// MJD 58119 is the night of 2018-01-01. A mid-latitude site in
	// winter should see roughly ten hours of astronomical darkness.
	hours := palomar.NightlyDarkness([]int64{58119})
	require.Len(t, hours, 1)
	assert.Greater(t, hours[0], 8.0)
	assert.Less(t, hours[0], 13.0)
}

func TestNightlyDarknessSeasons(t *testing.T) {
	// MJD 58300 is the night of 2018-07-01.
	hours := palomar.NightlyDarkness([]int64{58119, 58300})
	require.Len(t, hours, 2)
	assert.Greater(t, hours[0], hours[1], "winter night should be darker for longer than summer night")
}

func TestNightlyDarknessPolarDay(t *testing.T) {
	// At high northern latitude around the June solstice the sun never
	// reaches astronomical twilight.
	svalbard := Site{Name: "Svalbard", Latitude: 78.2, Longitude: 15.6}
	hours := svalbard.NightlyDarkness([]int64{58288}) // 2018-06-19
	require.Len(t, hours, 1)
	assert.True(t, math.IsNaN(hours[0]), "expected NaN darkness, got %v", hours[0])
}

func TestNightlyDarknessEmpty(t *testing.T) {
	assert.Empty(t, palomar.NightlyDarkness(nil))
}
