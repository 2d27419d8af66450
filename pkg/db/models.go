package db

import "time"

// Employee represents a database employee record
type Employee struct {
	ID            string
	Name          string
	RoleGroup     string
	Active        bool
	MaxPerMonth   int
	MaxPerWeek    int
	MaxPerWeekend int

	// Comma-free text arrays, stored as Postgres text[]
	ForbiddenAreas []string
	PreferredAreas []string
	Skills         []string
	FallbackFor    []string

	// BannedWeekdays holds time.Weekday values (0 = Sunday)
	BannedWeekdays []int
	BannedDates    []string // YYYY-MM-DD
}

// DutySlot represents a database duty slot record
type DutySlot struct {
	ID             string
	Period         string // YYYY-MM
	Date           string // YYYY-MM-DD
	ServiceType    string
	RoleGroup      string
	RolePriority   int
	Mandatory      bool
	Area           string
	BlocksPublish  bool
	RequiredSkills []string
	OptionalSkills []string
}

// Absence represents a database absence record
type Absence struct {
	ID         string
	EmployeeID string
	FromDate   string // YYYY-MM-DD
	ToDate     string // YYYY-MM-DD
	LongTerm   bool
}

// Lock represents a database lock record. A nil EmployeeID pins the
// slot as explicitly left free.
type Lock struct {
	Period     string // YYYY-MM
	SlotID     string
	EmployeeID *string
	UpdatedAt  time.Time
}

// Assignment represents a database assignment record, persisted only
// on commit.
type Assignment struct {
	ID         string
	Period     string // YYYY-MM
	SlotID     string
	EmployeeID string
	Source     string // "lock" or "solver"
	RunID      string
}

// PlanningState represents the per-period planning metadata row
type PlanningState struct {
	Period         string // YYYY-MM
	LastRunAt      *time.Time
	IsDirty        bool
	SubmittedCount int
	MissingCount   int

	// LockVersion is bumped by every lock mutation; commits compare it
	// against the snapshot they solved from.
	LockVersion int64
}

// LookbackAssignment is a committed assignment from the tail of the
// previous period, joined with its slot's date and area.
type LookbackAssignment struct {
	EmployeeID string
	Date       string // YYYY-MM-DD
	Area       string
}
