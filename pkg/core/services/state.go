package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// StateStore defines the database operations needed to read planning state
type StateStore interface {
	GetPlanningState(ctx context.Context, period string) (db.PlanningState, error)
}

// GetState returns the planning metadata for one period
func GetState(ctx context.Context, store StateStore, logger *zap.Logger, period roster.Period) (db.PlanningState, error) {
	state, err := store.GetPlanningState(ctx, period.String())
	if err != nil {
		return db.PlanningState{}, fmt.Errorf("failed to fetch planning state: %w", err)
	}

	logger.Debug("Fetched planning state",
		zap.String("period", period.String()),
		zap.Bool("is_dirty", state.IsDirty))

	return state, nil
}
