package obsdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dfrostig/ztf-sim/internal/survey"
)

// ReportRun summarises one saved report.
type ReportRun struct {
	RunID     string
	Lines     int
	CreatedAt string
}

// SaveReport persists every report line under a fresh run id and
// returns that id. The report-store schema is migrated on demand.
func (db *DB) SaveReport(ctx context.Context, report *survey.Report) (string, error) {
	if err := db.MigrateUp(); err != nil {
		return "", err
	}

	runID := uuid.New().String()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin report transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_reports (run_id, position, label, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare report insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range report.Entries() {
		if _, err := stmt.ExecContext(ctx, runID, i, e.Label, fmt.Sprintf("%v", e.Value)); err != nil {
			return "", fmt.Errorf("failed to store report line %q: %w", e.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit report: %w", err)
	}

	return runID, nil
}

// ReportRuns lists saved reports, most recent first.
func (db *DB) ReportRuns(ctx context.Context) ([]ReportRun, error) {
	if err := db.MigrateUp(); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, COUNT(*), MIN(created_at)
		FROM run_reports
		GROUP BY run_id
		ORDER BY MIN(created_at) DESC, run_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer rows.Close()

	var runs []ReportRun
	for rows.Next() {
		var run ReportRun
		if err := rows.Scan(&run.RunID, &run.Lines, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report runs: %w", err)
	}

	return runs, nil
}
