package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

func newTestSolver(snapshot *Snapshot) *Solver {
	catalog := rules.NewCatalog()
	return NewSolver(catalog, NewEvaluator(catalog, snapshot))
}

func strPtr(s string) *string { return &s }

func TestSolve_Deterministic(t *testing.T) {
	build := func(reversed bool) *Snapshot {
		second := testEmployee()
		second.ID = "emp-2"
		second.Name = "Bernd Auer"

		employees := []Employee{testEmployee(), second}

		slotB := testSlot()
		slotB.ID = "slot-2"
		slotB.Date = date("2025-05-03")
		slotC := testSlot()
		slotC.ID = "slot-3"
		slotC.Date = date("2025-05-06")
		slots := []DutySlot{testSlot(), slotB, slotC}

		if reversed {
			employees = []Employee{second, testEmployee()}
			slots = []DutySlot{slotC, slotB, testSlot()}
		}
		return &Snapshot{
			Period:    Period{Year: 2025, Month: time.May},
			Employees: employees,
			Slots:     slots,
			Absences: []Absence{
				{EmployeeID: "emp-2", From: date("2025-05-06"), To: date("2025-05-06")},
			},
			Locks: []Lock{{SlotID: "slot-2", EmployeeID: strPtr("emp-2")}},
		}
	}

	first := build(false)
	second := build(true)

	resultA := newTestSolver(first).Solve(first)
	resultB := newTestSolver(first).Solve(first)
	resultC := newTestSolver(second).Solve(second)

	// Identical snapshot, identical output. Input ordering is irrelevant.
	require.Equal(t, resultA, resultB)
	require.Equal(t, resultA, resultC)
}

func TestSolve_LockOverridesRanking(t *testing.T) {
	second := testEmployee()
	second.ID = "emp-2"
	second.Name = "Bernd Auer"

	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{testEmployee(), second},
		Slots:     []DutySlot{testSlot()},
		Locks:     []Lock{{SlotID: "slot-1", EmployeeID: strPtr("emp-2")}},
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	// The free solver would pick emp-1 on the ID tie-break; the lock wins.
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, Assignment{SlotID: "slot-1", EmployeeID: "emp-2", Source: SourceLock}, result.Assignments[0])
	assert.Empty(t, result.Violations)
	assert.True(t, result.PublishAllowed)
	assert.Equal(t, Coverage{Filled: 1, Required: 1}, result.Summary.Coverage)
}

func TestSolve_AbsenceBlocksSoleCandidate(t *testing.T) {
	slot := testSlot()
	slot.BlocksPublish = true

	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{testEmployee()},
		Slots:     []DutySlot{slot},
		Absences: []Absence{
			{EmployeeID: "emp-1", From: date("2025-05-01"), To: date("2025-05-03")},
		},
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	assert.Empty(t, result.Assignments)
	require.Len(t, result.UnfilledSlots, 1)
	unfilled := result.UnfilledSlots[0]
	assert.Equal(t, "slot-1", unfilled.SlotID)
	assert.Equal(t, []rules.Code{rules.CodeNoCandidate}, unfilled.ReasonCodes)
	assert.Contains(t, unfilled.CandidatesBlockedBy, rules.CodeAbsenceBlocked)
	assert.True(t, unfilled.BlocksPublish)

	assert.False(t, result.PublishAllowed)
	assert.Equal(t, Coverage{Filled: 0, Required: 1}, result.Summary.Coverage)
	assert.Equal(t, 85.0, result.Summary.Score)
}

func TestSolve_LockedInactiveEmployeeIsForced(t *testing.T) {
	inactive := testEmployee()
	inactive.Active = false

	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{inactive},
		Slots:     []DutySlot{testSlot()},
		Locks:     []Lock{{SlotID: "slot-1", EmployeeID: strPtr("emp-1")}},
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	// The lock target stays on the sheet so output matches the lock table,
	// but the violation keeps the period unpublishable.
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, Assignment{SlotID: "slot-1", EmployeeID: "emp-1", Source: SourceLock}, result.Assignments[0])

	require.Len(t, result.Violations, 1)
	assert.Equal(t, rules.CodeLockedInvalidEmployee, result.Violations[0].Code)
	assert.Equal(t, rules.SeverityHard, result.Violations[0].Severity)
	assert.Equal(t, "emp-1", result.Violations[0].EmployeeID)

	assert.Equal(t, Coverage{Filled: 1, Required: 1}, result.Summary.Coverage)
	assert.False(t, result.PublishAllowed)
}

func TestSolve_LockedUnknownEmployee(t *testing.T) {
	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{testEmployee()},
		Slots:     []DutySlot{testSlot()},
		Locks:     []Lock{{SlotID: "slot-1", EmployeeID: strPtr("emp-ghost")}},
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "emp-ghost", result.Assignments[0].EmployeeID)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, rules.CodeLockedInvalidEmployee, result.Violations[0].Code)
	assert.False(t, result.PublishAllowed)
}

func TestSolve_LockedEmptySlotStaysFree(t *testing.T) {
	slot := testSlot()
	slot.BlocksPublish = true

	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{testEmployee()},
		Slots:     []DutySlot{slot},
		Locks:     []Lock{{SlotID: "slot-1", EmployeeID: nil}},
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	// An eligible employee exists, but the admin pinned the slot empty.
	assert.Empty(t, result.Assignments)
	require.Len(t, result.UnfilledSlots, 1)
	assert.Equal(t, []rules.Code{rules.CodeLockedEmpty}, result.UnfilledSlots[0].ReasonCodes)
	assert.False(t, result.PublishAllowed)
}

func TestSolve_EmptySkeleton(t *testing.T) {
	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{testEmployee()},
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, rules.CodeNoSkeleton, result.Violations[0].Code)
	assert.Empty(t, result.Violations[0].SlotID)
	assert.False(t, result.PublishAllowed)
	assert.Equal(t, Coverage{Filled: 0, Required: 0}, result.Summary.Coverage)
}

func TestSolve_CoverageBounds(t *testing.T) {
	capped := testEmployee()
	capped.MaxPerMonth = 1

	var slots []DutySlot
	for i, day := range []string{"2025-05-02", "2025-05-05", "2025-05-08"} {
		slot := testSlot()
		slot.ID = "slot-" + string(rune('1'+i))
		slot.Date = date(day)
		slots = append(slots, slot)
	}
	optional := testSlot()
	optional.ID = "slot-9"
	optional.Date = date("2025-05-12")
	optional.Mandatory = false
	slots = append(slots, optional)

	snapshot := &Snapshot{
		Period:    Period{Year: 2025, Month: time.May},
		Employees: []Employee{capped},
		Slots:     slots,
	}

	result := newTestSolver(snapshot).Solve(snapshot)

	coverage := result.Summary.Coverage
	assert.Equal(t, 3, coverage.Required)
	assert.LessOrEqual(t, coverage.Filled, coverage.Required)

	unfilledMandatory := 0
	for _, unfilled := range result.UnfilledSlots {
		if unfilled.SlotID != "slot-9" {
			unfilledMandatory++
		}
	}
	assert.Equal(t, coverage.Required, coverage.Filled+unfilledMandatory)

	// Only the monthly cap bites: one filled, two mandatory open.
	assert.Equal(t, 1, coverage.Filled)
	assert.Equal(t, 70.0, result.Summary.Score)
}
