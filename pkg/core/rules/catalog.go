package rules

import (
	"fmt"
	"strings"
)

// Severity classifies a rule as excluding (hard) or penalizing (soft)
type Severity string

const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
)

// Code identifies a rule in the catalog
type Code string

// Hard rule codes - a violation excludes the candidate outright
const (
	CodeRoleMismatch          Code = "ROLE_MISMATCH"
	CodeAbsenceBlocked        Code = "ABSENCE_BLOCKED"
	CodeEmployeeInactive      Code = "EMPLOYEE_INACTIVE"
	CodeDateBanned            Code = "DATE_BANNED"
	CodeRestViolation         Code = "REST_VIOLATION"
	CodeMonthlyCapExceeded    Code = "MONTHLY_CAP_EXCEEDED"
	CodeWeeklyCapExceeded     Code = "WEEKLY_CAP_EXCEEDED"
	CodeWeekendCapExceeded    Code = "WEEKEND_CAP_EXCEEDED"
	CodeAreaForbidden         Code = "AREA_FORBIDDEN"
	CodeSkillMissing          Code = "SKILL_MISSING"
	CodeOverlap               Code = "OVERLAP"
	CodeWorkplaceClosed       Code = "WORKPLACE_CLOSED"
	CodeLockedEmpty           Code = "LOCKED_EMPTY"
	CodeLockedInvalidEmployee Code = "LOCKED_INVALID_EMPLOYEE"
	CodeNoSkeleton            Code = "NO_SKELETON"
	CodeNoCandidate           Code = "NO_CANDIDATE"
)

// Soft rule codes - a violation penalizes ranking but never excludes
const (
	CodeFallbackCandidate    Code = "FALLBACK_CANDIDATE"
	CodeContinuityBroken     Code = "CONTINUITY_BROKEN"
	CodeLowPriorityArea      Code = "LOW_PRIORITY_AREA"
	CodeOptionalSkillMissing Code = "OPTIONAL_SKILL_MISSING"
)

// Definition describes a single rule in the catalog
type Definition struct {
	Code        Code
	Severity    Severity
	Label       string
	Description string

	// Weight is the ranking penalty for soft rules. Zero for hard rules.
	Weight float64
}

// Catalog is the closed, immutable set of rules the solver may emit.
// Built once at process start and passed by reference to the evaluator,
// ranker and scorer.
type Catalog struct {
	version     string
	definitions map[Code]Definition
}

// CatalogVersion identifies the current rule set. Bump when rules are
// added, removed, or change severity.
const CatalogVersion = "2025.2"

// NewCatalog builds the rule catalog. The returned catalog is never
// mutated after construction.
func NewCatalog() *Catalog {
	defs := []Definition{
		{Code: CodeRoleMismatch, Severity: SeverityHard, Label: "Role mismatch",
			Description: "The slot requires a qualification class the employee does not hold"},
		{Code: CodeAbsenceBlocked, Severity: SeverityHard, Label: "Absent",
			Description: "An absence or long-term absence covers the slot date"},
		{Code: CodeEmployeeInactive, Severity: SeverityHard, Label: "Employee inactive",
			Description: "The employee is not active for the planning period"},
		{Code: CodeDateBanned, Severity: SeverityHard, Label: "Date banned",
			Description: "The slot date or weekday is explicitly banned for the employee"},
		{Code: CodeRestViolation, Severity: SeverityHard, Label: "Rest violation",
			Description: "The assignment would violate the consecutive-day rest restriction"},
		{Code: CodeMonthlyCapExceeded, Severity: SeverityHard, Label: "Monthly cap exceeded",
			Description: "The assignment would exceed the employee's monthly slot cap"},
		{Code: CodeWeeklyCapExceeded, Severity: SeverityHard, Label: "Weekly cap exceeded",
			Description: "The assignment would exceed the employee's ISO-week slot cap"},
		{Code: CodeWeekendCapExceeded, Severity: SeverityHard, Label: "Weekend cap exceeded",
			Description: "The assignment would exceed the employee's weekend slot cap"},
		{Code: CodeAreaForbidden, Severity: SeverityHard, Label: "Area forbidden",
			Description: "The slot's area is forbidden for the employee"},
		{Code: CodeSkillMissing, Severity: SeverityHard, Label: "Skill missing",
			Description: "The slot requires a skill the employee lacks"},
		{Code: CodeOverlap, Severity: SeverityHard, Label: "Overlapping duty",
			Description: "The employee is already assigned to a slot on the same date"},
		{Code: CodeWorkplaceClosed, Severity: SeverityHard, Label: "Workplace closed",
			Description: "The workplace is closed on the slot date"},
		{Code: CodeLockedEmpty, Severity: SeverityHard, Label: "Locked empty",
			Description: "An administrator explicitly locked the slot to remain unassigned"},
		{Code: CodeLockedInvalidEmployee, Severity: SeverityHard, Label: "Lock targets invalid employee",
			Description: "The slot is locked to an employee that is inactive or ineligible"},
		{Code: CodeNoSkeleton, Severity: SeverityHard, Label: "No roster skeleton",
			Description: "No duty slots exist for the planning period"},
		{Code: CodeNoCandidate, Severity: SeverityHard, Label: "No eligible candidate",
			Description: "Every employee is excluded by at least one hard rule"},

		{Code: CodeFallbackCandidate, Severity: SeveritySoft, Label: "Fallback candidate", Weight: 3,
			Description: "The employee is only a fallback for this service type"},
		{Code: CodeContinuityBroken, Severity: SeveritySoft, Label: "Continuity broken", Weight: 2,
			Description: "A different employee previously covered this area"},
		{Code: CodeLowPriorityArea, Severity: SeveritySoft, Label: "Low-priority area", Weight: 1,
			Description: "The slot's area is not among the employee's preferred areas"},
		{Code: CodeOptionalSkillMissing, Severity: SeveritySoft, Label: "Optional skill missing", Weight: 1,
			Description: "The employee lacks an optional skill requested for the slot"},
	}

	m := make(map[Code]Definition, len(defs))
	for _, d := range defs {
		m[d.Code] = d
	}

	return &Catalog{
		version:     CatalogVersion,
		definitions: m,
	}
}

// Version returns the catalog version string
func (c *Catalog) Version() string {
	return c.version
}

// Lookup returns the definition for a code. The boolean is false for
// codes outside the catalog.
func (c *Catalog) Lookup(code Code) (Definition, bool) {
	d, ok := c.definitions[code]
	return d, ok
}

// Severity returns the severity for a known code. It panics on unknown
// codes: the solver must never reach for a code outside the catalog.
func (c *Catalog) Severity(code Code) Severity {
	d, ok := c.definitions[code]
	if !ok {
		panic(fmt.Sprintf("rule code %q is not in the catalog", code))
	}
	return d.Severity
}

// Weight returns the soft ranking penalty for a code (zero for hard rules)
func (c *Catalog) Weight(code Code) float64 {
	return c.definitions[code].Weight
}

// Codes returns all codes of the given severity in no particular order
func (c *Catalog) Codes(severity Severity) []Code {
	var codes []Code
	for code, def := range c.definitions {
		if def.Severity == severity {
			codes = append(codes, code)
		}
	}
	return codes
}

// Len returns the number of rules in the catalog
func (c *Catalog) Len() int {
	return len(c.definitions)
}

// FallbackLabel derives a human-readable label from a code's text.
// Consumers use this for codes a stale client does not recognize; the
// engine itself never needs it.
func FallbackLabel(code Code) string {
	words := strings.Split(strings.ToLower(string(code)), "_")
	if words[0] == "" {
		return string(code)
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}
