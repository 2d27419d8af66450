package services

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
)

// deterministicRunID derives the run ID from the run's content, so an
// unchanged snapshot always yields a byte-identical RunResult.
func deterministicRunID(result *roster.RunResult) string {
	payload, err := json.Marshal(struct {
		Period        string
		Assignments   []roster.Assignment
		Violations    []roster.Violation
		UnfilledSlots []roster.UnfilledSlot
		Summary       roster.Summary
	}{
		Period:        result.Period,
		Assignments:   result.Assignments,
		Violations:    result.Violations,
		UnfilledSlots: result.UnfilledSlots,
		Summary:       result.Summary,
	})
	if err != nil {
		// The result is plain data; marshalling cannot fail in practice.
		return uuid.New().String()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, payload).String()
}
