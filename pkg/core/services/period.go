package services

import (
	"time"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
)

// ParsePeriod parses a YYYY-MM period string. Malformed input is a
// ValidationError, rejected before any solving.
func ParsePeriod(s string) (roster.Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return roster.Period{}, newValidationError("period", "%q is not a valid YYYY-MM period", s)
	}
	return roster.Period{Year: t.Year(), Month: t.Month()}, nil
}
