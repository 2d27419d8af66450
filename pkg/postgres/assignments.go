package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// GetAssignments retrieves the committed assignment set of one period
func (d *DB) GetAssignments(ctx context.Context, period string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, period, slot_id, employee_id, source, run_id
		FROM assignment
		WHERE period = $1
		ORDER BY slot_id
	`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.Period, &a.SlotID, &a.EmployeeID, &a.Source, &a.RunID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// GetLookback returns committed assignments from the last days before
// the period, joined with their slot's date and area.
func (d *DB) GetLookback(ctx context.Context, period string, days int) ([]db.LookbackAssignment, error) {
	start, _, err := periodBounds(period)
	if err != nil {
		return nil, err
	}
	from := start.AddDate(0, 0, -days)

	rows, err := d.pool.Query(ctx, `
		SELECT a.employee_id, s.slot_date, s.area
		FROM assignment a
		JOIN duty_slot s ON s.id = a.slot_id
		WHERE s.slot_date >= $1 AND s.slot_date < $2
		ORDER BY s.slot_date, a.slot_id
	`, from, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookback assignments: %w", err)
	}
	defer rows.Close()

	var lookback []db.LookbackAssignment
	for rows.Next() {
		var l db.LookbackAssignment
		var date time.Time
		if err := rows.Scan(&l.EmployeeID, &date, &l.Area); err != nil {
			return nil, fmt.Errorf("failed to scan lookback assignment: %w", err)
		}
		l.Date = date.Format("2006-01-02")
		lookback = append(lookback, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookback assignments: %w", err)
	}

	return lookback, nil
}

// CommitRun atomically replaces the period's assignment set and
// updates the planning state. The period's lock_version is re-read
// inside the transaction; if it moved since the snapshot was taken the
// commit fails with db.ErrStaleLockVersion and nothing is persisted.
func (d *DB) CommitRun(ctx context.Context, params db.CommitParams) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO planning_period (period) VALUES ($1)
		ON CONFLICT (period) DO NOTHING
	`, params.Period)
	if err != nil {
		return fmt.Errorf("failed to ensure planning period: %w", err)
	}

	var storedVersion int64
	err = tx.QueryRow(ctx, `
		SELECT lock_version FROM planning_period WHERE period = $1 FOR UPDATE
	`, params.Period).Scan(&storedVersion)
	if err != nil {
		return fmt.Errorf("failed to read lock version: %w", err)
	}

	if storedVersion != params.ExpectedLockVersion {
		return db.ErrStaleLockVersion
	}

	_, err = tx.Exec(ctx, `DELETE FROM assignment WHERE period = $1`, params.Period)
	if err != nil {
		return fmt.Errorf("failed to clear previous assignments: %w", err)
	}

	for _, a := range params.Assignments {
		_, err = tx.Exec(ctx, `
			INSERT INTO assignment (id, period, slot_id, employee_id, source, run_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, a.ID, a.Period, a.SlotID, a.EmployeeID, a.Source, a.RunID)
		if err != nil {
			return fmt.Errorf("failed to insert assignment for slot %s: %w", a.SlotID, err)
		}
	}

	committedAt := params.CommittedAt
	if committedAt.IsZero() {
		committedAt = time.Now()
	}

	_, err = tx.Exec(ctx, `
		UPDATE planning_period
		SET last_run_at = $2, is_dirty = FALSE
		WHERE period = $1
	`, params.Period, committedAt)
	if err != nil {
		return fmt.Errorf("failed to update planning state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}
