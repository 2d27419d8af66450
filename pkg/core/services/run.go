package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// RunStore defines the database operations needed to commit a run
type RunStore interface {
	SnapshotStore
	CommitRun(ctx context.Context, params db.CommitParams) error
}

// Run executes the solver and persists the result atomically: all
// slots persist or none do. The commit carries the snapshot's lock
// version, so a lock edited mid-run surfaces as db.ErrStaleLockVersion
// instead of silently committing against stale lock data; the caller
// retries.
func Run(
	ctx context.Context,
	store RunStore,
	catalog *rules.Catalog,
	cfg *config.Config,
	logger *zap.Logger,
	period roster.Period,
) (*roster.RunResult, error) {
	logger.Debug("Starting run", zap.String("period", period.String()))

	snapshot, err := BuildSnapshot(ctx, store, cfg, logger, period)
	if err != nil {
		return nil, err
	}

	evaluator := roster.NewEvaluator(catalog, snapshot)
	solver := roster.NewSolver(catalog, evaluator)
	result := solver.Solve(snapshot)
	result.RunID = deterministicRunID(result)

	assignments := make([]db.Assignment, 0, len(result.Assignments))
	for _, a := range result.Assignments {
		assignments = append(assignments, db.Assignment{
			ID:         uuid.New().String(),
			Period:     period.String(),
			SlotID:     a.SlotID,
			EmployeeID: a.EmployeeID,
			Source:     string(a.Source),
			RunID:      result.RunID,
		})
	}

	err = store.CommitRun(ctx, db.CommitParams{
		Period:              period.String(),
		ExpectedLockVersion: snapshot.LockVersion,
		RunID:               result.RunID,
		Assignments:         assignments,
		CommittedAt:         time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}

	logger.Info("Run committed",
		zap.String("period", period.String()),
		zap.String("run_id", result.RunID),
		zap.Int("assignments", len(assignments)),
		zap.Float64("score", result.Summary.Score),
		zap.Bool("publish_allowed", result.PublishAllowed))

	return result, nil
}
