package roster

import (
	"fmt"
	"slices"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

// Evaluator scores one (employee, slot, running-state) triple against
// the rule catalog. Implementations must be pure: no mutation, no I/O.
// An empty result means the employee is eligible for the slot.
//
// The greedy solver is one consumer; a stricter backend (constraint
// satisfaction, ILP) could be substituted behind the same interface.
type Evaluator interface {
	Evaluate(emp Employee, slot DutySlot, running *Accumulator) []Violation
}

// CatalogEvaluator evaluates the fixed rule catalog against a snapshot
type CatalogEvaluator struct {
	catalog  *rules.Catalog
	snapshot *Snapshot

	// absencesByEmployee is indexed once so Evaluate stays O(absences
	// per employee) rather than O(all absences).
	absencesByEmployee map[string][]Absence
}

// NewEvaluator builds a CatalogEvaluator for one snapshot
func NewEvaluator(catalog *rules.Catalog, snapshot *Snapshot) *CatalogEvaluator {
	byEmployee := make(map[string][]Absence)
	for _, absence := range snapshot.Absences {
		byEmployee[absence.EmployeeID] = append(byEmployee[absence.EmployeeID], absence)
	}
	return &CatalogEvaluator{
		catalog:            catalog,
		snapshot:           snapshot,
		absencesByEmployee: byEmployee,
	}
}

// Evaluate returns every rule the assignment would violate. Hard
// violations exclude the candidate; soft violations only penalize
// ranking.
func (e *CatalogEvaluator) Evaluate(emp Employee, slot DutySlot, running *Accumulator) []Violation {
	var violations []Violation

	hard := func(code rules.Code, message string) {
		violations = append(violations, Violation{
			Code:       code,
			Severity:   rules.SeverityHard,
			Message:    message,
			SlotID:     slot.ID,
			EmployeeID: emp.ID,
		})
	}
	soft := func(code rules.Code, message string) {
		violations = append(violations, Violation{
			Code:       code,
			Severity:   rules.SeveritySoft,
			Message:    message,
			SlotID:     slot.ID,
			EmployeeID: emp.ID,
		})
	}

	if !emp.Active {
		hard(rules.CodeEmployeeInactive, fmt.Sprintf("%s is inactive for %s", emp.Name, e.snapshot.Period))
	}

	if slot.RoleGroup != "" && emp.RoleGroup != slot.RoleGroup {
		hard(rules.CodeRoleMismatch,
			fmt.Sprintf("slot requires role group %s, %s has %s", slot.RoleGroup, emp.Name, emp.RoleGroup))
	}

	for _, absence := range e.absencesByEmployee[emp.ID] {
		if absence.Covers(slot.Date) {
			hard(rules.CodeAbsenceBlocked,
				fmt.Sprintf("%s is absent on %s", emp.Name, DateKey(slot.Date)))
			break
		}
	}

	if slices.Contains(emp.BannedWeekdays, slot.Date.Weekday()) {
		hard(rules.CodeDateBanned,
			fmt.Sprintf("%s is banned on %ss", emp.Name, slot.Date.Weekday()))
	} else {
		for _, banned := range emp.BannedDates {
			if DateKey(banned) == DateKey(slot.Date) {
				hard(rules.CodeDateBanned,
					fmt.Sprintf("%s is banned for %s", DateKey(slot.Date), emp.Name))
				break
			}
		}
	}

	if running.AssignedOn(emp.ID, slot.Date) {
		hard(rules.CodeOverlap,
			fmt.Sprintf("%s already holds a slot on %s", emp.Name, DateKey(slot.Date)))
	} else if running.AssignedAdjacent(emp.ID, slot.Date) {
		hard(rules.CodeRestViolation,
			fmt.Sprintf("%s has a duty on an adjacent day", emp.Name))
	}

	if emp.MaxPerMonth > 0 && running.MonthCount(emp.ID)+1 > emp.MaxPerMonth {
		hard(rules.CodeMonthlyCapExceeded,
			fmt.Sprintf("%s would exceed the monthly cap of %d", emp.Name, emp.MaxPerMonth))
	}
	if emp.MaxPerWeek > 0 && running.WeekCount(emp.ID, slot.Date)+1 > emp.MaxPerWeek {
		hard(rules.CodeWeeklyCapExceeded,
			fmt.Sprintf("%s would exceed the weekly cap of %d", emp.Name, emp.MaxPerWeek))
	}
	if emp.MaxPerWeekend > 0 && isWeekend(slot.Date) && running.WeekendCount(emp.ID)+1 > emp.MaxPerWeekend {
		hard(rules.CodeWeekendCapExceeded,
			fmt.Sprintf("%s would exceed the weekend cap of %d", emp.Name, emp.MaxPerWeekend))
	}

	if slot.Area != "" && slices.Contains(emp.ForbiddenAreas, slot.Area) {
		hard(rules.CodeAreaForbidden,
			fmt.Sprintf("area %s is forbidden for %s", slot.Area, emp.Name))
	}

	for _, skill := range slot.RequiredSkills {
		if !slices.Contains(emp.Skills, skill) {
			hard(rules.CodeSkillMissing,
				fmt.Sprintf("%s lacks required skill %s", emp.Name, skill))
			break
		}
	}

	if e.snapshot.ClosedDates[DateKey(slot.Date)] {
		hard(rules.CodeWorkplaceClosed,
			fmt.Sprintf("workplace closed on %s", DateKey(slot.Date)))
	}

	// Soft rules below: penalize, never exclude.

	if slices.Contains(emp.FallbackFor, slot.ServiceType) {
		soft(rules.CodeFallbackCandidate,
			fmt.Sprintf("%s is only a fallback for %s", emp.Name, slot.ServiceType))
	}

	if slot.Area != "" {
		if last := running.LastAreaEmployee(slot.Area); last != "" && last != emp.ID {
			soft(rules.CodeContinuityBroken,
				fmt.Sprintf("area %s was last covered by a different employee", slot.Area))
		}
		if len(emp.PreferredAreas) > 0 && !slices.Contains(emp.PreferredAreas, slot.Area) {
			soft(rules.CodeLowPriorityArea,
				fmt.Sprintf("area %s is not preferred by %s", slot.Area, emp.Name))
		}
	}

	for _, skill := range slot.OptionalSkills {
		if !slices.Contains(emp.Skills, skill) {
			soft(rules.CodeOptionalSkillMissing,
				fmt.Sprintf("%s lacks optional skill %s", emp.Name, skill))
			break
		}
	}

	return violations
}

// HardCodes extracts the hard-severity codes from an evaluation result
func HardCodes(violations []Violation) []rules.Code {
	var codes []rules.Code
	for _, v := range violations {
		if v.Severity == rules.SeverityHard {
			codes = append(codes, v.Code)
		}
	}
	return codes
}
