package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// InputSummaryResult counts the solver inputs for one period
type InputSummaryResult struct {
	Period    string `json:"period"`
	Employees int    `json:"employees"`
	Slots     int    `json:"slots"`
	Roles     int    `json:"roles"`
	HardRules int    `json:"hardRules"`
	SoftRules int    `json:"softRules"`
}

// SummaryStore defines the database operations needed for the input summary
type SummaryStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetSlots(ctx context.Context, period string) ([]db.DutySlot, error)
}

// InputSummary returns counts of employees, slots, distinct roles and
// catalog rules for one period.
func InputSummary(
	ctx context.Context,
	store SummaryStore,
	catalog *rules.Catalog,
	logger *zap.Logger,
	period roster.Period,
) (*InputSummaryResult, error) {
	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	slots, err := store.GetSlots(ctx, period.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty slots: %w", err)
	}

	roles := make(map[string]bool)
	for _, slot := range slots {
		roles[slot.RoleGroup] = true
	}

	summary := &InputSummaryResult{
		Period:    period.String(),
		Employees: len(employees),
		Slots:     len(slots),
		Roles:     len(roles),
		HardRules: len(catalog.Codes(rules.SeverityHard)),
		SoftRules: len(catalog.Codes(rules.SeveritySoft)),
	}

	logger.Debug("Built input summary",
		zap.String("period", period.String()),
		zap.Int("employees", summary.Employees),
		zap.Int("slots", summary.Slots))

	return summary, nil
}
