package roster

import "time"

// employeeCounters holds the per-employee running totals for one pass
type employeeCounters struct {
	MonthCount   int
	WeekCounts   map[int]int // ISO week -> count
	WeekendCount int
	AssignedOn   map[string]bool // date key -> assigned
}

// Accumulator is the solver-owned mutable running state for a single
// pass. The evaluator reads it but never writes; only the solver
// records assignments, which keeps the evaluator pure and the counters
// in lockstep with the output set.
type Accumulator struct {
	byEmployee map[string]*employeeCounters

	// lastAreaEmployee tracks the most recent employee per area, for
	// the continuity preference.
	lastAreaEmployee map[string]string
}

// NewAccumulator builds running state seeded from the snapshot's
// lookback assignments, so cross-period effects such as "assigned
// yesterday" are visible to the rest rule and the continuity goal.
func NewAccumulator(lookback []PriorAssignment) *Accumulator {
	acc := &Accumulator{
		byEmployee:       make(map[string]*employeeCounters),
		lastAreaEmployee: make(map[string]string),
	}
	for _, prior := range lookback {
		c := acc.counters(prior.EmployeeID)
		c.AssignedOn[DateKey(prior.Date)] = true
		if prior.Area != "" {
			acc.lastAreaEmployee[prior.Area] = prior.EmployeeID
		}
	}
	return acc
}

func (a *Accumulator) counters(employeeID string) *employeeCounters {
	c, ok := a.byEmployee[employeeID]
	if !ok {
		c = &employeeCounters{
			WeekCounts: make(map[int]int),
			AssignedOn: make(map[string]bool),
		}
		a.byEmployee[employeeID] = c
	}
	return c
}

// Record registers an assignment and updates every running counter.
// Lookback entries never count toward the period caps, so only dates
// inside the planning period increment them.
func (a *Accumulator) Record(employeeID string, slot DutySlot) {
	c := a.counters(employeeID)
	c.MonthCount++
	_, week := slot.Date.ISOWeek()
	c.WeekCounts[week]++
	if isWeekend(slot.Date) {
		c.WeekendCount++
	}
	c.AssignedOn[DateKey(slot.Date)] = true
	if slot.Area != "" {
		a.lastAreaEmployee[slot.Area] = employeeID
	}
}

// MonthCount returns the employee's assignment count for the period
func (a *Accumulator) MonthCount(employeeID string) int {
	if c, ok := a.byEmployee[employeeID]; ok {
		return c.MonthCount
	}
	return 0
}

// WeekCount returns the employee's assignment count for the slot's ISO week
func (a *Accumulator) WeekCount(employeeID string, date time.Time) int {
	c, ok := a.byEmployee[employeeID]
	if !ok {
		return 0
	}
	_, week := date.ISOWeek()
	return c.WeekCounts[week]
}

// WeekendCount returns the employee's weekend assignment count
func (a *Accumulator) WeekendCount(employeeID string) int {
	if c, ok := a.byEmployee[employeeID]; ok {
		return c.WeekendCount
	}
	return 0
}

// AssignedOn reports whether the employee already holds a slot on the date
func (a *Accumulator) AssignedOn(employeeID string, date time.Time) bool {
	c, ok := a.byEmployee[employeeID]
	if !ok {
		return false
	}
	return c.AssignedOn[DateKey(date)]
}

// AssignedAdjacent reports whether the employee holds a slot on the day
// before or after the date.
func (a *Accumulator) AssignedAdjacent(employeeID string, date time.Time) bool {
	c, ok := a.byEmployee[employeeID]
	if !ok {
		return false
	}
	return c.AssignedOn[DateKey(date.AddDate(0, 0, -1))] ||
		c.AssignedOn[DateKey(date.AddDate(0, 0, 1))]
}

// LastAreaEmployee returns the employee most recently assigned in the
// area, or empty if the area has no prior assignment.
func (a *Accumulator) LastAreaEmployee(area string) string {
	return a.lastAreaEmployee[area]
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
