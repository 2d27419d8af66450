package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// LockStore defines the database operations needed to manage locks
type LockStore interface {
	GetSlots(ctx context.Context, period string) ([]db.DutySlot, error)
	GetLocks(ctx context.Context, period string) ([]db.Lock, error)
	UpsertLock(ctx context.Context, lock db.Lock) error
	DeleteLock(ctx context.Context, period, slotID string) error
}

// GetLocks returns the lock set of one period
func GetLocks(ctx context.Context, store LockStore, logger *zap.Logger, period roster.Period) ([]db.Lock, error) {
	locks, err := store.GetLocks(ctx, period.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locks: %w", err)
	}
	logger.Debug("Fetched locks", zap.String("period", period.String()), zap.Int("count", len(locks)))
	return locks, nil
}

// UpsertLock pins a slot to an employee, or to nobody when employeeID
// is nil ("explicitly left free"). The slot must belong to the period;
// an unknown slot is a ValidationError rejected before any write.
func UpsertLock(
	ctx context.Context,
	store LockStore,
	logger *zap.Logger,
	period roster.Period,
	slotID string,
	employeeID *string,
) error {
	if slotID == "" {
		return newValidationError("slotId", "slot id must not be empty")
	}

	slots, err := store.GetSlots(ctx, period.String())
	if err != nil {
		return fmt.Errorf("failed to fetch duty slots: %w", err)
	}

	known := false
	for _, slot := range slots {
		if slot.ID == slotID {
			known = true
			break
		}
	}
	if !known {
		return newValidationError("slotId", "slot %s does not exist in period %s", slotID, period)
	}

	err = store.UpsertLock(ctx, db.Lock{
		Period:     period.String(),
		SlotID:     slotID,
		EmployeeID: employeeID,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert lock: %w", err)
	}

	target := "empty"
	if employeeID != nil {
		target = *employeeID
	}
	logger.Info("Lock upserted",
		zap.String("period", period.String()),
		zap.String("slot_id", slotID),
		zap.String("target", target))

	return nil
}

// DeleteLock removes a lock, returning db.ErrNotFound if none exists
func DeleteLock(ctx context.Context, store LockStore, logger *zap.Logger, period roster.Period, slotID string) error {
	if err := store.DeleteLock(ctx, period.String(), slotID); err != nil {
		return err
	}
	logger.Info("Lock deleted",
		zap.String("period", period.String()),
		zap.String("slot_id", slotID))
	return nil
}
