package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

func TestBuildSnapshot(t *testing.T) {
	store := seededStore()
	store.employees[0].BannedWeekdays = []int{1}
	store.employees[0].BannedDates = []string{"2025-05-20"}
	store.absences = []db.Absence{
		{ID: "abs-1", EmployeeID: "emp-1", FromDate: "2025-05-01", ToDate: "2025-05-03"},
	}
	store.locks = []db.Lock{lockRow("slot-2", nil)}
	store.lookback = []db.LookbackAssignment{
		{EmployeeID: "emp-2", Date: "2025-04-30", Area: "ward-3"},
	}

	snapshot, err := BuildSnapshot(context.Background(), store, testConfig(), testLogger(), testPeriod())
	require.NoError(t, err)

	assert.Equal(t, testPeriod(), snapshot.Period)
	assert.Equal(t, int64(7), snapshot.LockVersion)

	require.Len(t, snapshot.Employees, 2)
	anna := snapshot.Employees[0]
	assert.Equal(t, []time.Weekday{time.Monday}, anna.BannedWeekdays)
	require.Len(t, anna.BannedDates, 1)
	assert.Equal(t, "2025-05-20", anna.BannedDates[0].Format("2006-01-02"))

	require.Len(t, snapshot.Slots, 2)
	assert.Equal(t, "2025-05-02", snapshot.Slots[0].Date.Format("2006-01-02"))

	require.Len(t, snapshot.Absences, 1)
	assert.True(t, snapshot.Absences[0].Covers(snapshot.Slots[0].Date))

	require.Len(t, snapshot.Locks, 1)
	assert.Equal(t, "slot-2", snapshot.Locks[0].SlotID)
	assert.Nil(t, snapshot.Locks[0].EmployeeID)

	require.Len(t, snapshot.Lookback, 1)
	assert.Equal(t, "emp-2", snapshot.Lookback[0].EmployeeID)
}

func TestBuildSnapshot_InvalidSlotDate(t *testing.T) {
	store := seededStore()
	store.slots[0].Date = "02.05.2025"

	_, err := BuildSnapshot(context.Background(), store, testConfig(), testLogger(), testPeriod())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot-1")
}

func TestBuildSnapshot_ExpandsClosures(t *testing.T) {
	cfg := testConfig()
	cfg.ClosureRules = []config.ClosureRule{
		{RRule: "FREQ=WEEKLY;BYDAY=SU", Label: "sunday closure"},
	}

	snapshot, err := BuildSnapshot(context.Background(), seededStore(), cfg, testLogger(), testPeriod())
	require.NoError(t, err)

	assert.True(t, snapshot.ClosedDates["2025-05-04"])
	assert.True(t, snapshot.ClosedDates["2025-05-25"])
	assert.False(t, snapshot.ClosedDates["2025-05-05"])
}
