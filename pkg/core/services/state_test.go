package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetState(t *testing.T) {
	store := seededStore()

	state, err := GetState(context.Background(), store, testLogger(), testPeriod())
	require.NoError(t, err)

	assert.Equal(t, "2025-05", state.Period)
	assert.True(t, state.IsDirty)
	assert.Equal(t, int64(7), state.LockVersion)
}
