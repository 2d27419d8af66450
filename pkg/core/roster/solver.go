package roster

import (
	"fmt"
	"sort"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

// Solver runs a single deterministic pass over one period's snapshot.
// It is strictly greedy with no backtracking: once a slot is assigned
// it is never revisited, even if a later slot becomes unfillable as a
// side effect. That is a documented heuristic boundary, not a defect;
// the Evaluator interface is the seam where a stricter backend would
// plug in.
type Solver struct {
	catalog   *rules.Catalog
	evaluator Evaluator
}

// NewSolver builds a solver over the given catalog and evaluator
func NewSolver(catalog *rules.Catalog, evaluator Evaluator) *Solver {
	return &Solver{catalog: catalog, evaluator: evaluator}
}

// Solve produces the assignment set, violation report, unfilled-slot
// report, score and publish decision for the snapshot. The snapshot is
// never mutated; all running state lives in a pass-local accumulator.
func (s *Solver) Solve(snapshot *Snapshot) *RunResult {
	result := &RunResult{
		Period:        snapshot.Period.String(),
		Assignments:   []Assignment{},
		Violations:    []Violation{},
		UnfilledSlots: []UnfilledSlot{},
	}

	if len(snapshot.Slots) == 0 {
		result.Violations = append(result.Violations, Violation{
			Code:     rules.CodeNoSkeleton,
			Severity: rules.SeverityHard,
			Message:  fmt.Sprintf("no roster skeleton exists for %s", snapshot.Period),
		})
		finalize(snapshot, result)
		return result
	}

	slots := orderSlots(snapshot.Slots)
	running := NewAccumulator(snapshot.Lookback)

	locks := make(map[string]Lock, len(snapshot.Locks))
	for _, lock := range snapshot.Locks {
		locks[lock.SlotID] = lock
	}

	employees := make([]Employee, len(snapshot.Employees))
	copy(employees, snapshot.Employees)
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	employeesByID := make(map[string]Employee, len(employees))
	for _, emp := range employees {
		employeesByID[emp.ID] = emp
	}

	// Locks always take precedence, so they are applied in a first pass
	// and their counter updates are visible to every ranking decision.
	remaining := make([]DutySlot, 0, len(slots))
	for _, slot := range slots {
		lock, ok := locks[slot.ID]
		if !ok {
			remaining = append(remaining, slot)
			continue
		}
		s.applyLock(slot, lock, employeesByID, running, result)
	}

	for _, slot := range remaining {
		ranking := Rank(s.catalog, s.evaluator, slot, employees, running)

		if len(ranking.Candidates) == 0 {
			reasons := []rules.Code{rules.CodeNoCandidate}
			result.UnfilledSlots = append(result.UnfilledSlots, UnfilledSlot{
				SlotID:              slot.ID,
				Date:                DateKey(slot.Date),
				ServiceType:         slot.ServiceType,
				ReasonCodes:         reasons,
				BlocksPublish:       slot.BlocksPublish,
				CandidatesBlockedBy: ranking.BlockedBy,
			})
			continue
		}

		top := ranking.Candidates[0]
		result.Assignments = append(result.Assignments, Assignment{
			SlotID:     slot.ID,
			EmployeeID: top.Employee.ID,
			Source:     SourceSolver,
		})
		result.Violations = append(result.Violations, top.SoftViolations...)
		running.Record(top.Employee.ID, slot)
	}

	finalize(snapshot, result)
	return result
}

// applyLock resolves one locked slot. A nil target means the slot is
// explicitly left free. An invalid target is still forced into the
// slot so the published sheet agrees with the admin's lock table; the
// hard LOCKED_INVALID_EMPLOYEE violation keeps the publish gate shut
// for mandatory slots.
func (s *Solver) applyLock(slot DutySlot, lock Lock, employeesByID map[string]Employee, running *Accumulator, result *RunResult) {
	if lock.EmployeeID == nil {
		result.UnfilledSlots = append(result.UnfilledSlots, UnfilledSlot{
			SlotID:              slot.ID,
			Date:                DateKey(slot.Date),
			ServiceType:         slot.ServiceType,
			ReasonCodes:         []rules.Code{rules.CodeLockedEmpty},
			BlocksPublish:       slot.BlocksPublish,
			CandidatesBlockedBy: []rules.Code{},
		})
		return
	}

	targetID := *lock.EmployeeID
	emp, exists := employeesByID[targetID]

	switch {
	case !exists:
		result.Violations = append(result.Violations, Violation{
			Code:       rules.CodeLockedInvalidEmployee,
			Severity:   rules.SeverityHard,
			Message:    fmt.Sprintf("lock references unknown employee %s", targetID),
			SlotID:     slot.ID,
			EmployeeID: targetID,
		})
	default:
		violations := s.evaluator.Evaluate(emp, slot, running)
		if hard := HardCodes(violations); len(hard) > 0 {
			result.Violations = append(result.Violations, Violation{
				Code:       rules.CodeLockedInvalidEmployee,
				Severity:   rules.SeverityHard,
				Message:    fmt.Sprintf("lock pins ineligible employee %s (%s)", emp.Name, joinCodes(hard)),
				SlotID:     slot.ID,
				EmployeeID: targetID,
			})
		}
	}

	result.Assignments = append(result.Assignments, Assignment{
		SlotID:     slot.ID,
		EmployeeID: targetID,
		Source:     SourceLock,
	})
	running.Record(targetID, slot)
}

// orderSlots fixes the deterministic processing order: ascending date,
// mandatory before optional, declared role priority, then slot ID.
func orderSlots(slots []DutySlot) []DutySlot {
	ordered := make([]DutySlot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Mandatory != b.Mandatory {
			return a.Mandatory
		}
		if a.RolePriority != b.RolePriority {
			return a.RolePriority < b.RolePriority
		}
		return a.ID < b.ID
	})
	return ordered
}

func joinCodes(codes []rules.Code) string {
	out := ""
	for i, code := range codes {
		if i > 0 {
			out += ", "
		}
		out += string(code)
	}
	return out
}
