package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// GetEmployees retrieves all employee records, sorted by ID for
// deterministic downstream processing.
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, role_group, active,
		       max_per_month, max_per_week, max_per_weekend,
		       forbidden_areas, preferred_areas, skills, fallback_for,
		       banned_weekdays, banned_dates
		FROM employee
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		var bannedDates []time.Time
		if err := rows.Scan(
			&e.ID, &e.Name, &e.RoleGroup, &e.Active,
			&e.MaxPerMonth, &e.MaxPerWeek, &e.MaxPerWeekend,
			&e.ForbiddenAreas, &e.PreferredAreas, &e.Skills, &e.FallbackFor,
			&e.BannedWeekdays, &bannedDates,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		for _, date := range bannedDates {
			e.BannedDates = append(e.BannedDates, date.Format("2006-01-02"))
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}
