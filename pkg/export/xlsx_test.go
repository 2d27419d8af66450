package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

func TestBuildWorkbook(t *testing.T) {
	rows := []Row{
		{Date: "2025-05-03", ServiceType: "on-call", Area: "ward-3", Employee: "Bernd Auer", Source: "lock"},
		{Date: "2025-05-02", ServiceType: "on-call", Area: "ward-3", Employee: "Anna Berger", Source: "solver"},
		{Date: "2025-05-04", ServiceType: "background", Area: "icu"},
	}

	f, err := BuildWorkbook("2025-05", rows)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(RosterSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Roster 2025-05", header)

	// Rows come out date-ordered regardless of input order
	for cell, want := range map[string]string{
		"A2": "2025-05-02", "D2": "Anna Berger", "E2": "solver",
		"A3": "2025-05-03", "D3": "Bernd Auer", "E3": "lock",
		"A4": "2025-05-04", "B4": "background", "D4": "",
	} {
		got, err := f.GetCellValue(RosterSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}

	assert.NotContains(t, f.GetSheetList(), "Sheet1")
}

func TestRowsFromAssignments(t *testing.T) {
	slots := []db.DutySlot{
		{ID: "slot-1", Date: "2025-05-02", ServiceType: "on-call", Area: "ward-3"},
		{ID: "slot-2", Date: "2025-05-03", ServiceType: "on-call", Area: "ward-3"},
	}
	assignments := []db.Assignment{
		{SlotID: "slot-1", EmployeeID: "emp-1", Source: "solver"},
		{SlotID: "slot-2", EmployeeID: "emp-gone", Source: "lock"},
	}
	employees := []db.Employee{{ID: "emp-1", Name: "Anna Berger"}}

	rows := RowsFromAssignments(slots, assignments, employees)
	require.Len(t, rows, 2)

	assert.Equal(t, "Anna Berger", rows[0].Employee)
	assert.Equal(t, "solver", rows[0].Source)

	// Unknown employee IDs fall back to the raw ID instead of vanishing
	assert.Equal(t, "emp-gone", rows[1].Employee)
}

func TestRowsFromAssignments_VacantSlot(t *testing.T) {
	slots := []db.DutySlot{{ID: "slot-1", Date: "2025-05-02", ServiceType: "on-call"}}

	rows := RowsFromAssignments(slots, nil, nil)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Employee)
	assert.Empty(t, rows[0].Source)
}
