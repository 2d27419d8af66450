package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// GetSlots retrieves the duty slots of one planning period
func (d *DB) GetSlots(ctx context.Context, period string) ([]db.DutySlot, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, period, slot_date, service_type, role_group, role_priority,
		       mandatory, area, blocks_publish, required_skills, optional_skills
		FROM duty_slot
		WHERE period = $1
		ORDER BY slot_date, id
	`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty slots: %w", err)
	}
	defer rows.Close()

	var slots []db.DutySlot
	for rows.Next() {
		var s db.DutySlot
		var date time.Time
		if err := rows.Scan(
			&s.ID, &s.Period, &date, &s.ServiceType, &s.RoleGroup, &s.RolePriority,
			&s.Mandatory, &s.Area, &s.BlocksPublish, &s.RequiredSkills, &s.OptionalSkills,
		); err != nil {
			return nil, fmt.Errorf("failed to scan duty slot: %w", err)
		}
		s.Date = date.Format("2006-01-02")
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty slots: %w", err)
	}

	return slots, nil
}
