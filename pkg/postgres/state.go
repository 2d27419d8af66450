package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// GetPlanningState retrieves the planning metadata row for one period.
// A period that has never been touched gets a zero-value dirty state.
func (d *DB) GetPlanningState(ctx context.Context, period string) (db.PlanningState, error) {
	var state db.PlanningState
	err := d.pool.QueryRow(ctx, `
		SELECT period, last_run_at, is_dirty, submitted_count, missing_count, lock_version
		FROM planning_period
		WHERE period = $1
	`, period).Scan(
		&state.Period, &state.LastRunAt, &state.IsDirty,
		&state.SubmittedCount, &state.MissingCount, &state.LockVersion,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.PlanningState{Period: period, IsDirty: true}, nil
	}
	if err != nil {
		return db.PlanningState{}, fmt.Errorf("failed to query planning state: %w", err)
	}
	return state, nil
}
