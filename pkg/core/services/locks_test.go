package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

func TestUpsertLock_PinEmployee(t *testing.T) {
	store := seededStore()

	err := UpsertLock(context.Background(), store, testLogger(), testPeriod(), "slot-1", strPtr("emp-2"))
	require.NoError(t, err)

	require.Len(t, store.upserted, 1)
	lock := store.upserted[0]
	assert.Equal(t, "2025-05", lock.Period)
	assert.Equal(t, "slot-1", lock.SlotID)
	require.NotNil(t, lock.EmployeeID)
	assert.Equal(t, "emp-2", *lock.EmployeeID)
}

func TestUpsertLock_PinEmpty(t *testing.T) {
	store := seededStore()

	err := UpsertLock(context.Background(), store, testLogger(), testPeriod(), "slot-1", nil)
	require.NoError(t, err)

	require.Len(t, store.upserted, 1)
	assert.Nil(t, store.upserted[0].EmployeeID)
}

func TestUpsertLock_UnknownSlot(t *testing.T) {
	store := seededStore()

	err := UpsertLock(context.Background(), store, testLogger(), testPeriod(), "slot-99", strPtr("emp-1"))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "slotId", validationErr.Field)
	assert.Empty(t, store.upserted)
}

func TestUpsertLock_EmptySlotID(t *testing.T) {
	store := seededStore()

	err := UpsertLock(context.Background(), store, testLogger(), testPeriod(), "", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, store.upserted)
}

func TestDeleteLock(t *testing.T) {
	store := seededStore()

	err := DeleteLock(context.Background(), store, testLogger(), testPeriod(), "slot-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"slot-1"}, store.deleted)
}

func TestDeleteLock_NotFound(t *testing.T) {
	store := seededStore()
	store.deleteErr = db.ErrNotFound

	err := DeleteLock(context.Background(), store, testLogger(), testPeriod(), "slot-1")
	assert.ErrorIs(t, err, db.ErrNotFound)
}
