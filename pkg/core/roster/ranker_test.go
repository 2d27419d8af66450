package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

func TestRank_FiltersHardViolations(t *testing.T) {
	snapshot := &Snapshot{Period: Period{Year: 2025, Month: time.May}}
	catalog := rules.NewCatalog()
	evaluator := NewEvaluator(catalog, snapshot)

	eligible := testEmployee()
	ineligible := testEmployee()
	ineligible.ID = "emp-2"
	ineligible.RoleGroup = "OA"

	ranking := Rank(catalog, evaluator, testSlot(), []Employee{eligible, ineligible}, NewAccumulator(nil))

	require.Len(t, ranking.Candidates, 1)
	assert.Equal(t, "emp-1", ranking.Candidates[0].Employee.ID)
	assert.Equal(t, []rules.Code{rules.CodeRoleMismatch}, ranking.BlockedBy)
}

func TestRank_SoftPenaltyOrdering(t *testing.T) {
	snapshot := &Snapshot{Period: Period{Year: 2025, Month: time.May}}
	catalog := rules.NewCatalog()
	evaluator := NewEvaluator(catalog, snapshot)

	clean := testEmployee()
	clean.ID = "emp-9"

	fallback := testEmployee()
	fallback.ID = "emp-1"
	fallback.FallbackFor = []string{"on-call"}

	ranking := Rank(catalog, evaluator, testSlot(), []Employee{fallback, clean}, NewAccumulator(nil))

	require.Len(t, ranking.Candidates, 2)
	// Zero soft violations beats a fallback candidate despite the higher ID
	assert.Equal(t, "emp-9", ranking.Candidates[0].Employee.ID)
	assert.Equal(t, "emp-1", ranking.Candidates[1].Employee.ID)
	assert.Equal(t, catalog.Weight(rules.CodeFallbackCandidate), ranking.Candidates[1].SoftPenalty)
}

func TestRank_TieBreakByEmployeeID(t *testing.T) {
	snapshot := &Snapshot{Period: Period{Year: 2025, Month: time.May}}
	catalog := rules.NewCatalog()
	evaluator := NewEvaluator(catalog, snapshot)

	a := testEmployee()
	a.ID = "emp-2"
	b := testEmployee()
	b.ID = "emp-1"

	// Identical soft profiles: the lower identifier wins, on every run
	for i := 0; i < 10; i++ {
		ranking := Rank(catalog, evaluator, testSlot(), []Employee{a, b}, NewAccumulator(nil))
		require.Len(t, ranking.Candidates, 2)
		assert.Equal(t, "emp-1", ranking.Candidates[0].Employee.ID)
	}
}

func TestRank_EmptyEligibleSet(t *testing.T) {
	snapshot := &Snapshot{
		Period: Period{Year: 2025, Month: time.May},
		Absences: []Absence{
			{EmployeeID: "emp-1", From: date("2025-05-01"), To: date("2025-05-03")},
		},
	}
	catalog := rules.NewCatalog()
	evaluator := NewEvaluator(catalog, snapshot)

	absent := testEmployee()
	inactive := testEmployee()
	inactive.ID = "emp-2"
	inactive.Active = false

	ranking := Rank(catalog, evaluator, testSlot(), []Employee{absent, inactive}, NewAccumulator(nil))

	assert.Empty(t, ranking.Candidates)
	assert.ElementsMatch(t, []rules.Code{rules.CodeAbsenceBlocked, rules.CodeEmployeeInactive}, ranking.BlockedBy)
}
