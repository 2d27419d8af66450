package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// GetAbsences retrieves absences overlapping the planning period.
// Long-term absences that merely span the month are included.
func (d *DB) GetAbsences(ctx context.Context, period string) ([]db.Absence, error) {
	start, end, err := periodBounds(period)
	if err != nil {
		return nil, err
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, from_date, to_date, long_term
		FROM absence
		WHERE from_date <= $2 AND to_date >= $1
		ORDER BY employee_id, from_date
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []db.Absence
	for rows.Next() {
		var a db.Absence
		var from, to time.Time
		if err := rows.Scan(&a.ID, &a.EmployeeID, &from, &to, &a.LongTerm); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		a.FromDate = from.Format("2006-01-02")
		a.ToDate = to.Format("2006-01-02")
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating absences: %w", err)
	}

	return absences, nil
}

// periodBounds returns the first and last day of a YYYY-MM period
func periodBounds(period string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q: %w", period, err)
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}
