package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
	"github.com/hinterbergers/mycliniq-sub005/pkg/export"
)

// ExportStore defines the database operations needed to export a roster
type ExportStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetSlots(ctx context.Context, period string) ([]db.DutySlot, error)
	GetAssignments(ctx context.Context, period string) ([]db.Assignment, error)
}

// ExportRoster renders the committed roster of one period as an Excel
// workbook. A period with a skeleton but no committed run exports all
// slots as vacant.
func ExportRoster(
	ctx context.Context,
	store ExportStore,
	logger *zap.Logger,
	period roster.Period,
) (*excelize.File, error) {
	periodKey := period.String()

	slots, err := store.GetSlots(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, newValidationError("period", "no roster skeleton exists for %s", periodKey)
	}

	assignments, err := store.GetAssignments(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	rows := export.RowsFromAssignments(slots, assignments, employees)
	workbook, err := export.BuildWorkbook(periodKey, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	logger.Info("Roster exported",
		zap.String("period", periodKey),
		zap.Int("slots", len(slots)),
		zap.Int("assignments", len(assignments)))

	return workbook, nil
}
