package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

func TestInputSummary(t *testing.T) {
	store := seededStore()
	store.slots = append(store.slots, db.DutySlot{
		ID: "slot-3", Period: "2025-05", Date: "2025-05-10",
		ServiceType: "background", RoleGroup: "OA", Mandatory: false,
	})
	catalog := rules.NewCatalog()

	summary, err := InputSummary(context.Background(), store, catalog, testLogger(), testPeriod())
	require.NoError(t, err)

	assert.Equal(t, "2025-05", summary.Period)
	assert.Equal(t, 2, summary.Employees)
	assert.Equal(t, 3, summary.Slots)
	assert.Equal(t, 2, summary.Roles)
	assert.Equal(t, len(catalog.Codes(rules.SeverityHard)), summary.HardRules)
	assert.Equal(t, len(catalog.Codes(rules.SeveritySoft)), summary.SoftRules)
}
