package survey

// Visit is one executed exposure read from a run's pointing log.
type Visit struct {
	// Night is the integer survey-night index. Gaps in the night range
	// are nights lost to weather.
	Night int64

	// ExpMJD is the exposure start time as a Modified Julian Date.
	ExpMJD float64

	// VisitExpTime is the exposure duration in seconds.
	VisitExpTime float64

	// SlewTime is the slew duration in seconds preceding the exposure.
	// NaN when no real slew occurred (start of night, after a weather
	// break).
	SlewTime float64

	// SlewDist is the angular distance in radians from the previous
	// pointing.
	SlewDist float64

	// Airmass of the observation, >= 1.
	Airmass float64

	// PropID identifies the observing program, Subprogram its
	// sub-category.
	PropID     int64
	Subprogram string

	// Filter is the filter name, FieldID the sky field.
	Filter  string
	FieldID int64

	// TotalRequestsTonight is how many times this (program, field) pair
	// was requested on this night; constant across the sequence group.
	TotalRequestsTonight int64

	// MetricValue is the per-visit figure-of-merit contribution assigned
	// by the simulator.
	MetricValue float64
}
