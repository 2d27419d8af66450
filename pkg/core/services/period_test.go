package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
)

func TestParsePeriod(t *testing.T) {
	period, err := ParsePeriod("2025-05")
	require.NoError(t, err)
	assert.Equal(t, roster.Period{Year: 2025, Month: time.May}, period)
	assert.Equal(t, "2025-05", period.String())
}

func TestParsePeriod_Invalid(t *testing.T) {
	for _, input := range []string{"", "2025", "2025-13", "05-2025", "2025-05-01", "garbage"} {
		_, err := ParsePeriod(input)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "input %q", input)
		assert.Equal(t, "period", validationErr.Field)
	}
}
