package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// mockStore is an in-memory db.Store for service tests. Reads serve
// the seeded fixtures; writes are recorded for assertions.
type mockStore struct {
	employees   []db.Employee
	slots       []db.DutySlot
	absences    []db.Absence
	locks       []db.Lock
	lookback    []db.LookbackAssignment
	state       db.PlanningState
	assignments []db.Assignment

	upserted []db.Lock
	deleted  []string
	commits  []db.CommitParams

	deleteErr error
	commitErr error
}

func (m *mockStore) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	return m.employees, nil
}

func (m *mockStore) GetSlots(ctx context.Context, period string) ([]db.DutySlot, error) {
	return m.slots, nil
}

func (m *mockStore) GetAbsences(ctx context.Context, period string) ([]db.Absence, error) {
	return m.absences, nil
}

func (m *mockStore) GetLocks(ctx context.Context, period string) ([]db.Lock, error) {
	return m.locks, nil
}

func (m *mockStore) UpsertLock(ctx context.Context, lock db.Lock) error {
	m.upserted = append(m.upserted, lock)
	return nil
}

func (m *mockStore) DeleteLock(ctx context.Context, period, slotID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, slotID)
	return nil
}

func (m *mockStore) GetLookback(ctx context.Context, period string, days int) ([]db.LookbackAssignment, error) {
	return m.lookback, nil
}

func (m *mockStore) GetPlanningState(ctx context.Context, period string) (db.PlanningState, error) {
	return m.state, nil
}

func (m *mockStore) GetAssignments(ctx context.Context, period string) ([]db.Assignment, error) {
	return m.assignments, nil
}

func (m *mockStore) CommitRun(ctx context.Context, params db.CommitParams) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.commits = append(m.commits, params)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:  "postgres://localhost/roster_test",
		LookbackDays: 2,
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }

func testPeriod() roster.Period {
	return roster.Period{Year: 2025, Month: time.May}
}

// seededStore returns a store with one eligible employee and two
// mandatory slots in the test period.
func seededStore() *mockStore {
	return &mockStore{
		employees: []db.Employee{
			{ID: "emp-1", Name: "Anna Berger", RoleGroup: "ASS", Active: true},
			{ID: "emp-2", Name: "Bernd Auer", RoleGroup: "ASS", Active: true},
		},
		slots: []db.DutySlot{
			{ID: "slot-1", Period: "2025-05", Date: "2025-05-02", ServiceType: "on-call", RoleGroup: "ASS", Mandatory: true, Area: "ward-3"},
			{ID: "slot-2", Period: "2025-05", Date: "2025-05-05", ServiceType: "on-call", RoleGroup: "ASS", Mandatory: true, Area: "ward-3"},
		},
		state: db.PlanningState{Period: "2025-05", IsDirty: true, LockVersion: 7},
	}
}

func lockRow(slotID string, employeeID *string) db.Lock {
	return db.Lock{Period: "2025-05", SlotID: slotID, EmployeeID: employeeID}
}

func strPtr(s string) *string { return &s }
