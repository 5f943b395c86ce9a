package obsdb

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/dfrostig/ztf-sim/internal/survey"
)

// SummaryTable is the table the simulator writes, one row per executed
// visit.
const SummaryTable = "Summary"

// requiredColumns are the Summary columns the statistics calculator
// depends on.
var requiredColumns = []string{
	"night",
	"expMJD",
	"visitExpTime",
	"slewTime",
	"slewDist",
	"airmass",
	"propID",
	"subprogram",
	"filter",
	"fieldID",
	"totalRequestsTonight",
	"metricValue",
}

// LoadVisits bulk-loads the whole observation table for one run,
// ordered by night and exposure time so consecutive rows form the
// chronological pointing sequence. A NULL slewTime loads as NaN.
func (db *DB) LoadVisits(ctx context.Context) ([]survey.Visit, error) {
	if err := db.checkSummarySchema(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT night, expMJD, visitExpTime, slewTime, slewDist, airmass,
		       propID, subprogram, filter, fieldID, totalRequestsTonight,
		       metricValue
		FROM "Summary"
		ORDER BY night, expMJD
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", SummaryTable, err)
	}
	defer rows.Close()

	var visits []survey.Visit
	for rows.Next() {
		var v survey.Visit
		var slewTime sql.NullFloat64
		if err := rows.Scan(
			&v.Night,
			&v.ExpMJD,
			&v.VisitExpTime,
			&slewTime,
			&v.SlewDist,
			&v.Airmass,
			&v.PropID,
			&v.Subprogram,
			&v.Filter,
			&v.FieldID,
			&v.TotalRequestsTonight,
			&v.MetricValue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		v.SlewTime = math.NaN()
		if slewTime.Valid {
			v.SlewTime = slewTime.Float64
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visits: %w", err)
	}

	return visits, nil
}

// checkSummarySchema verifies the Summary table exists and names any
// missing required column instead of surfacing a generic query error.
func (db *DB) checkSummarySchema(ctx context.Context) error {
	rows, err := db.QueryContext(ctx, `PRAGMA table_info("Summary")`)
	if err != nil {
		return fmt.Errorf("failed to inspect %s schema: %w", SummaryTable, err)
	}
	defer rows.Close()

	have := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			deflt      sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &deflt, &primaryKey); err != nil {
			return fmt.Errorf("failed to scan %s schema row: %w", SummaryTable, err)
		}
		have[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read %s schema: %w", SummaryTable, err)
	}

	if len(have) == 0 {
		return fmt.Errorf("pointing log has no %s table", SummaryTable)
	}
	for _, col := range requiredColumns {
		if !have[col] {
			return fmt.Errorf("%s table is missing column %q", SummaryTable, col)
		}
	}
	return nil
}
