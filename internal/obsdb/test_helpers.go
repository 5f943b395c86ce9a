package obsdb

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	"github.com/dfrostig/ztf-sim/internal/survey"
)

// summarySchema mirrors what the simulator's pointing logger creates.
const summarySchema = `
	CREATE TABLE "Summary" (
		night                INTEGER,
		expMJD               REAL,
		visitExpTime         REAL,
		slewTime             REAL,
		slewDist             REAL,
		airmass              REAL,
		propID               INTEGER,
		subprogram           TEXT,
		filter               TEXT,
		fieldID              INTEGER,
		totalRequestsTonight INTEGER,
		metricValue          REAL
	);
`

// createTestLog writes a pointing log containing the given visits into
// a temp directory and opens it. NaN slew times are stored as NULL.
func createTestLog(t *testing.T, visits []survey.Visit) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.db")
	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("create test pointing log: %v", err)
	}
	if _, err := raw.Exec(summarySchema); err != nil {
		t.Fatalf("create Summary table: %v", err)
	}
	insertTestVisits(t, raw, visits)
	if err := raw.Close(); err != nil {
		t.Fatalf("close test pointing log: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open test pointing log: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insertTestVisits(t *testing.T, raw *sql.DB, visits []survey.Visit) {
	t.Helper()
	for _, v := range visits {
		var slew any
		if !math.IsNaN(v.SlewTime) {
			slew = v.SlewTime
		}
		_, err := raw.Exec(`
			INSERT INTO "Summary" (
				night, expMJD, visitExpTime, slewTime, slewDist, airmass,
				propID, subprogram, filter, fieldID, totalRequestsTonight,
				metricValue
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.Night, v.ExpMJD, v.VisitExpTime, slew, v.SlewDist, v.Airmass,
			v.PropID, v.Subprogram, v.Filter, v.FieldID, v.TotalRequestsTonight,
			v.MetricValue,
		)
		if err != nil {
			t.Fatalf("insert test visit: %v", err)
		}
	}
}
