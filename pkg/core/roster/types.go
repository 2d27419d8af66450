package roster

import (
	"fmt"
	"time"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

// Period identifies one planning month
type Period struct {
	Year  int
	Month time.Month
}

// String renders the period as YYYY-MM
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Contains reports whether the date falls inside the planning month
func (p Period) Contains(date time.Time) bool {
	return date.Year() == p.Year && date.Month() == p.Month
}

// Employee is the solver's view of a staff member
type Employee struct {
	ID        string
	Name      string
	RoleGroup string
	Active    bool

	// Caps. Zero means uncapped.
	MaxPerMonth   int
	MaxPerWeek    int
	MaxPerWeekend int

	ForbiddenAreas []string
	PreferredAreas []string
	Skills         []string

	// FallbackFor lists service types the employee may cover but is not
	// a primary choice for.
	FallbackFor []string

	BannedWeekdays []time.Weekday
	BannedDates    []time.Time
}

// DutySlot is one duty/role requirement for a single date
type DutySlot struct {
	ID          string
	Date        time.Time
	ServiceType string

	// RoleGroup is the qualification class required to cover the slot
	RoleGroup string

	// RolePriority orders slots of the same date and mandatory class;
	// lower values are filled first.
	RolePriority int

	Mandatory bool
	Area      string

	// BlocksPublish marks slots whose vacancy must block publication
	BlocksPublish bool

	RequiredSkills []string
	OptionalSkills []string
}

// Absence blocks assignment for an inclusive date range
type Absence struct {
	EmployeeID string
	From       time.Time
	To         time.Time
	LongTerm   bool
}

// Covers reports whether the absence covers the given date
func (a Absence) Covers(date time.Time) bool {
	return !date.Before(a.From) && !date.After(a.To)
}

// Lock pins or clears a slot's assignment outside normal solving.
// A nil EmployeeID means the slot is explicitly left free.
type Lock struct {
	SlotID     string
	EmployeeID *string
}

// PriorAssignment is bounded lookback state from the previous period,
// limited to the days immediately before the planning month.
type PriorAssignment struct {
	EmployeeID string
	Date       time.Time
	Area       string
}

// Snapshot is the normalized input for one solver pass. It is built by
// the services layer and never mutated by the solver.
type Snapshot struct {
	Period    Period
	Employees []Employee
	Slots     []DutySlot
	Absences  []Absence
	Locks     []Lock

	// ClosedDates marks dates (YYYY-MM-DD) on which the workplace is
	// closed, expanded from the configured closure rules.
	ClosedDates map[string]bool

	// Lookback carries assignments from the tail of the previous period
	Lookback []PriorAssignment

	// LockVersion is the optimistic concurrency stamp of the lock set
	// the snapshot was built from.
	LockVersion int64
}

// AssignmentSource records how a slot came to be occupied
type AssignmentSource string

const (
	SourceLock   AssignmentSource = "lock"
	SourceSolver AssignmentSource = "solver"
)

// Assignment pairs a slot with the employee covering it
type Assignment struct {
	SlotID     string           `json:"slotId"`
	EmployeeID string           `json:"employeeId"`
	Source     AssignmentSource `json:"source"`
}

// Violation is one rule violation observed during a run. SlotID and
// EmployeeID are empty for period-level violations.
type Violation struct {
	Code       rules.Code     `json:"code"`
	Severity   rules.Severity `json:"severity"`
	Message    string         `json:"message"`
	SlotID     string         `json:"slotId,omitempty"`
	EmployeeID string         `json:"employeeId,omitempty"`
}

// UnfilledSlot describes a slot the solver could not fill
type UnfilledSlot struct {
	SlotID              string       `json:"slotId"`
	Date                string       `json:"date"`
	ServiceType         string       `json:"serviceType"`
	ReasonCodes         []rules.Code `json:"reasonCodes"`
	BlocksPublish       bool         `json:"blocksPublish"`
	CandidatesBlockedBy []rules.Code `json:"candidatesBlockedBy"`
}

// Coverage counts mandatory slots against their final assignments
type Coverage struct {
	Filled   int `json:"filled"`
	Required int `json:"required"`
}

// Summary aggregates the run into a bounded score and coverage counts
type Summary struct {
	Score    float64  `json:"score"`
	Coverage Coverage `json:"coverage"`
}

// RunResult is the solver's complete output contract
type RunResult struct {
	RunID          string         `json:"runId"`
	Period         string         `json:"period"`
	Assignments    []Assignment   `json:"assignments"`
	Violations     []Violation    `json:"violations"`
	UnfilledSlots  []UnfilledSlot `json:"unfilledSlots"`
	Summary        Summary        `json:"summary"`
	PublishAllowed bool           `json:"publishAllowed"`
}

// DateKey formats a date the way snapshot maps key it
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
