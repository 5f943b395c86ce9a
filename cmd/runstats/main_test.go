package main

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// createPointingLog writes a three-night run fixture: two visits per
// night, 30s exposures, slews alternating 50s and 30s.
func createPointingLog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
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
		)
	`)
	require.NoError(t, err)

	for night := int64(1); night <= 3; night++ {
		for i, slew := range []float64{50, 30} {
			filter := "g"
			if i == 1 {
				filter = "r"
			}
			_, err = db.Exec(`
				INSERT INTO "Summary" VALUES (?, ?, 30, ?, 0.01, 1.2, 1,
					'all_sky', ?, 100, 2, 1.0)`,
				night, 58119+float64(night)+0.2+0.02*float64(i), slew, filter)
			require.NoError(t, err)
		}
	}
	return path
}

func TestRunWrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"one.db", "two.db"},
	} {
		var buf bytes.Buffer
		err := run(args, &buf)
		assert.NoError(t, err, "args %v", args)
		assert.Empty(t, buf.String(), "args %v should print no report", args)
	}
}

func TestRunVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &buf))
	assert.Contains(t, buf.String(), "dev")
}

func TestRunMissingPointingLog(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "absent.db")}, &buf)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRunReport(t *testing.T) {
	path := createPointingLog(t)

	var buf bytes.Buffer
	require.NoError(t, run([]string{path}, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 22)
	assert.Equal(t, "Number of Nights\t3", lines[0])
	assert.Equal(t, "Nights completely weathered out\t0", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "Total Science Time (h)\t0.11666"),
		"unexpected science time line %q", lines[3])
	assert.Contains(t, buf.String(), "Open Shutter Fraction\t")
	assert.Contains(t, buf.String(), "Program Fraction\tmap[1:1]")
}

func TestRunBadConfig(t *testing.T) {
	path := createPointingLog(t)
	var buf bytes.Buffer
	err := run([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml"), path}, &buf)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRunSaveAndList(t *testing.T) {
	path := createPointingLog(t)

	var buf bytes.Buffer
	require.NoError(t, run([]string{"-save", path}, &buf))

	var list bytes.Buffer
	require.NoError(t, run([]string{"-list", path}, &list))
	lines := strings.Split(strings.TrimRight(list.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "22 lines")
}
