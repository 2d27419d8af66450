package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// GetLocks retrieves the lock set of one planning period
func (d *DB) GetLocks(ctx context.Context, period string) ([]db.Lock, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT period, slot_id, employee_id, updated_at
		FROM roster_lock
		WHERE period = $1
		ORDER BY slot_id
	`, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query locks: %w", err)
	}
	defer rows.Close()

	var locks []db.Lock
	for rows.Next() {
		var l db.Lock
		if err := rows.Scan(&l.Period, &l.SlotID, &l.EmployeeID, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lock: %w", err)
		}
		locks = append(locks, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locks: %w", err)
	}

	return locks, nil
}

// UpsertLock creates or replaces a lock and bumps the period's lock
// version so in-flight commits against the old lock set fail.
func (d *DB) UpsertLock(ctx context.Context, lock db.Lock) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO roster_lock (period, slot_id, employee_id, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (period, slot_id)
		DO UPDATE SET employee_id = EXCLUDED.employee_id, updated_at = NOW()
	`, lock.Period, lock.SlotID, lock.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to upsert lock: %w", err)
	}

	if err := bumpLockVersion(ctx, tx, lock.Period); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit lock upsert: %w", err)
	}
	return nil
}

// DeleteLock removes a lock and bumps the period's lock version
func (d *DB) DeleteLock(ctx context.Context, period, slotID string) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM roster_lock WHERE period = $1 AND slot_id = $2
	`, period, slotID)
	if err != nil {
		return fmt.Errorf("failed to delete lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}

	if err := bumpLockVersion(ctx, tx, period); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit lock delete: %w", err)
	}
	return nil
}

// bumpLockVersion increments lock_version and marks the period dirty,
// creating the planning row on first touch.
func bumpLockVersion(ctx context.Context, tx pgx.Tx, period string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO planning_period (period, is_dirty, lock_version)
		VALUES ($1, TRUE, 1)
		ON CONFLICT (period)
		DO UPDATE SET lock_version = planning_period.lock_version + 1, is_dirty = TRUE
	`, period)
	if err != nil {
		return fmt.Errorf("failed to bump lock version: %w", err)
	}
	return nil
}
