package db

import (
	"context"
	"time"
)

// CommitParams carries everything a commit persists atomically
type CommitParams struct {
	Period string

	// ExpectedLockVersion is the lock version the solver's snapshot was
	// built from. The commit fails if the stored version has moved.
	ExpectedLockVersion int64

	RunID       string
	Assignments []Assignment
	CommittedAt time.Time
}

// Store defines the full set of database operations the roster service
// needs. pkg/postgres provides the production implementation; tests
// supply mocks per service.
type Store interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	GetSlots(ctx context.Context, period string) ([]DutySlot, error)
	GetAbsences(ctx context.Context, period string) ([]Absence, error)
	GetLocks(ctx context.Context, period string) ([]Lock, error)
	UpsertLock(ctx context.Context, lock Lock) error
	DeleteLock(ctx context.Context, period, slotID string) error

	// GetLookback returns committed assignments from the given number
	// of days immediately before the period.
	GetLookback(ctx context.Context, period string, days int) ([]LookbackAssignment, error)

	GetPlanningState(ctx context.Context, period string) (PlanningState, error)
	GetAssignments(ctx context.Context, period string) ([]Assignment, error)

	// CommitRun atomically replaces the period's assignment set and
	// updates the planning state. Returns ErrStaleLockVersion when the
	// lock set changed since the snapshot was taken.
	CommitRun(ctx context.Context, params CommitParams) error
}
