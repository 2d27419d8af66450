package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

// Preview executes a solver pass without persisting anything. It is
// side-effect free and safe to run concurrently with anything,
// including a concurrent commit; cancelling the context simply
// abandons the computation.
func Preview(
	ctx context.Context,
	store SnapshotStore,
	catalog *rules.Catalog,
	cfg *config.Config,
	logger *zap.Logger,
	period roster.Period,
) (*roster.RunResult, error) {
	logger.Debug("Starting preview", zap.String("period", period.String()))

	snapshot, err := BuildSnapshot(ctx, store, cfg, logger, period)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	evaluator := roster.NewEvaluator(catalog, snapshot)
	solver := roster.NewSolver(catalog, evaluator)
	result := solver.Solve(snapshot)
	result.RunID = deterministicRunID(result)

	logger.Info("Preview completed",
		zap.String("period", period.String()),
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("violations", len(result.Violations)),
		zap.Int("unfilled", len(result.UnfilledSlots)),
		zap.Float64("score", result.Summary.Score),
		zap.Bool("publish_allowed", result.PublishAllowed))

	return result, nil
}
