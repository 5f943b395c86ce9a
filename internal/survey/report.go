package survey

import (
	"fmt"
	"io"
)

// Entry is one line of a run report.
type Entry struct {
	Label string
	// Value is a scalar (int64 or float64) or a breakdown map
	// (map[int64]float64, map[string]int64 or map[string]float64).
	Value any
}

// Report is the ordered run-statistics report. Entries keep the fixed
// order in which they were derived; a report is never mutated after
// Compute returns it.
type Report struct {
	entries []Entry
}

func (r *Report) add(label string, value any) {
	r.entries = append(r.entries, Entry{Label: label, Value: value})
}

// Entries returns a copy of the report lines in order.
func (r *Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Value returns the value recorded under label.
func (r *Report) Value(label string) (any, bool) {
	for _, e := range r.entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return nil, false
}

// Print writes the report as tab-separated label/value lines. Breakdown
// maps render in their default textual form.
func (r *Report) Print(w io.Writer) error {
	for _, e := range r.entries {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", e.Label, e.Value); err != nil {
			return err
		}
	}
	return nil
}
