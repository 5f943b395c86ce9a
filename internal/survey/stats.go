// Package survey computes descriptive efficiency statistics for one
// simulated survey run from its completed-visit log.
package survey

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dfrostig/ztf-sim/internal/timeutil"
	"github.com/dfrostig/ztf-sim/internal/units"
)

// RealSlewMax is the slew-time threshold in seconds that separates
// genuine telescope repointing from night-boundary or weather-break
// bookkeeping values.
const RealSlewMax = 300.0

// DarknessModel maps a set of calendar nights (integer MJDs) to hours
// of astronomical darkness per night.
type DarknessModel interface {
	NightlyDarkness(nights []int64) []float64
}

// Compute derives the run-statistics report from the full observation
// table of one run.
//
// The visits must be sorted by (night, exposure time): the
// filter-exchange statistic reads consecutive rows as the chronological
// pointing sequence. Every filter name in the data must have an entry
// in filterIDs. Degenerate arithmetic (for example an empty group
// denominator) yields NaN or Inf report values, not an error.
func Compute(visits []Visit, filterIDs map[string]int, darkness DarknessModel) (*Report, error) {
	if len(visits) == 0 {
		return nil, errors.New("observation table is empty")
	}
	if err := checkChronological(visits); err != nil {
		return nil, err
	}

	// Resolve filter ids up front so an unknown filter aborts before any
	// statistic is derived.
	filterOrds := make([]int, len(visits))
	for i, v := range visits {
		id, ok := filterIDs[v.Filter]
		if !ok {
			return nil, fmt.Errorf("filter %q has no entry in the filter-id table", v.Filter)
		}
		filterOrds[i] = id
	}

	r := &Report{}

	// Night span. Undercounts when the run opens with weathered-out
	// nights before the first observation; preserved as-is.
	minNight, maxNight := visits[0].Night, visits[0].Night
	observedNights := make(map[int64]struct{})
	for _, v := range visits {
		if v.Night < minNight {
			minNight = v.Night
		}
		if v.Night > maxNight {
			maxNight = v.Night
		}
		observedNights[v.Night] = struct{}{}
	}
	numNights := maxNight - minNight + 1
	r.add("Number of Nights", numNights)
	r.add("Nights completely weathered out", numNights-int64(len(observedNights)))

	darkHours := stat.Mean(darkness.NightlyDarkness(calendarNights(visits)), nil)
	r.add("Mean Hours of Darkness per Night", darkHours)

	// Science time counts exposure plus slew for real slews only; rows
	// with NaN or anomalously long slews are lost time.
	var scienceSeconds float64
	for _, v := range visits {
		if v.SlewTime < RealSlewMax {
			scienceSeconds += v.VisitExpTime + v.SlewTime
		}
	}
	scienceHours := units.SecondsToHours(scienceSeconds)
	r.add("Total Science Time (h)", scienceHours)
	r.add("Science Time per Night (h)", scienceHours/float64(numNights))
	r.add("Fraction of Time Usable", scienceHours/(darkHours*float64(numNights)))
	r.add("Exposures per Hour", float64(len(visits))/scienceHours)

	var expSum, slewSum float64
	var betweens, slewDegs, airmasses []float64
	for _, v := range visits {
		airmasses = append(airmasses, v.Airmass)
		if math.IsNaN(v.SlewTime) {
			continue
		}
		expSum += v.VisitExpTime
		slewSum += v.SlewTime
		slewDegs = append(slewDegs, units.RadiansToDegrees(v.SlewDist))
		if v.SlewTime < RealSlewMax {
			betweens = append(betweens, v.SlewTime)
		}
	}
	r.add("Open Shutter Fraction", expSum/(expSum+slewSum))
	r.add("Mean Time Between Exposures (s)", mean(betweens))
	r.add("90% Time Between Exposures (s)", quantile(betweens, 0.9))
	r.add("Mean Slew Distance (deg)", mean(slewDegs))
	r.add("90% Slew Distance (deg)", quantile(slewDegs, 0.9))
	r.add("Median Airmass", quantile(airmasses, 0.5))
	r.add("90% Airmass", quantile(airmasses, 0.9))

	var totalExpTime float64
	progExpTime := make(map[int64]float64)
	subCount := make(map[string]int64)
	subExpTime := make(map[string]float64)
	filterCount := make(map[string]float64)
	for _, v := range visits {
		totalExpTime += v.VisitExpTime
		progExpTime[v.PropID] += v.VisitExpTime
		subCount[v.Subprogram]++
		subExpTime[v.Subprogram] += v.VisitExpTime
		filterCount[v.Filter]++
	}
	progFraction := make(map[int64]float64, len(progExpTime))
	for prop, secs := range progExpTime {
		progFraction[prop] = secs / totalExpTime
	}
	r.add("Program Fraction", progFraction)
	r.add("Subprogram Observations", subCount)
	subFraction := make(map[string]float64, len(subExpTime))
	for sub, secs := range subExpTime {
		subFraction[sub] = secs / totalExpTime
	}
	r.add("Subprogram Fraction", subFraction)
	filterFraction := make(map[string]float64, len(filterCount))
	for name, n := range filterCount {
		filterFraction[name] = n / float64(len(visits))
	}
	r.add("Filter Fraction", filterFraction)

	// Absolute steps between consecutive ordinal filter ids within a
	// night approximate filter-wheel exchanges.
	var totalExchanges float64
	for i := 1; i < len(visits); i++ {
		if visits[i].Night != visits[i-1].Night {
			continue
		}
		totalExchanges += math.Abs(float64(filterOrds[i] - filterOrds[i-1]))
	}
	r.add("Filter Exchanges per Night", totalExchanges/float64(len(observedNights)))
	r.add("Filter Exchanges per Hour", totalExchanges/scienceHours)

	r.add("Mean Sequence Completion by Program", sequenceCompletion(visits))

	var metricSum float64
	for _, v := range visits {
		metricSum += v.MetricValue
	}
	r.add("Figure of Merit per Science Hour", metricSum/scienceHours)

	return r, nil
}

// calendarNights returns the sorted distinct floor(expMJD) values.
func calendarNights(visits []Visit) []int64 {
	seen := make(map[int64]struct{})
	var nights []int64
	for _, v := range visits {
		n := timeutil.NightMJD(v.ExpMJD)
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			nights = append(nights, n)
		}
	}
	sort.Slice(nights, func(i, j int) bool { return nights[i] < nights[j] })
	return nights
}

// sequenceCompletion averages, per program, the observed-over-requested
// ratio of every (night, program, field) sequence group. The maximum
// recorded request count is used as the denominator in case the log is
// inconsistent within a group.
func sequenceCompletion(visits []Visit) map[int64]float64 {
	type groupKey struct {
		night, prop, field int64
	}
	counts := make(map[groupKey]int64)
	requests := make(map[groupKey]int64)
	for _, v := range visits {
		k := groupKey{v.Night, v.PropID, v.FieldID}
		counts[k]++
		if v.TotalRequestsTonight > requests[k] {
			requests[k] = v.TotalRequestsTonight
		}
	}

	sums := make(map[int64]float64)
	groups := make(map[int64]float64)
	for k, n := range counts {
		sums[k.prop] += float64(n) / float64(requests[k])
		groups[k.prop]++
	}
	completion := make(map[int64]float64, len(sums))
	for prop, sum := range sums {
		completion[prop] = sum / groups[prop]
	}
	return completion
}

func checkChronological(visits []Visit) error {
	for i := 1; i < len(visits); i++ {
		prev, cur := visits[i-1], visits[i]
		if cur.Night < prev.Night || (cur.Night == prev.Night && cur.ExpMJD < prev.ExpMJD) {
			return fmt.Errorf("visits out of chronological order at row %d (night %d, expMJD %f)",
				i, cur.Night, cur.ExpMJD)
		}
	}
	return nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// quantile is the empirical quantile of the sample; NaN when empty.
func quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
