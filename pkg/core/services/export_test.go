package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
	"github.com/hinterbergers/mycliniq-sub005/pkg/export"
)

func TestExportRoster(t *testing.T) {
	store := seededStore()
	store.assignments = []db.Assignment{
		{ID: "a-1", Period: "2025-05", SlotID: "slot-1", EmployeeID: "emp-1", Source: "solver", RunID: "run-1"},
	}

	workbook, err := ExportRoster(context.Background(), store, testLogger(), testPeriod())
	require.NoError(t, err)
	defer workbook.Close()

	name, err := workbook.GetCellValue(export.RosterSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Anna Berger", name)

	// slot-2 has no committed assignment and exports as vacant
	vacant, err := workbook.GetCellValue(export.RosterSheet, "D3")
	require.NoError(t, err)
	assert.Empty(t, vacant)
}

func TestExportRoster_NoSkeleton(t *testing.T) {
	store := seededStore()
	store.slots = nil

	_, err := ExportRoster(context.Background(), store, testLogger(), testPeriod())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "period", validationErr.Field)
}
