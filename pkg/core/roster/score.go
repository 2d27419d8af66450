package roster

import "github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"

// Score penalties. The score starts at 100 and loses a fixed amount
// per unfilled mandatory slot and per soft violation, floored at 0, so
// it is strictly monotonic in both terms until the floor.
const (
	scoreMax                 = 100.0
	penaltyUnfilledMandatory = 15.0
	penaltyPerSoftViolation  = 2.0
)

// finalize computes coverage, score and the publish decision from the
// assignment, violation and unfilled sets. Called exactly once at the
// end of a pass.
func finalize(snapshot *Snapshot, result *RunResult) {
	mandatory := make(map[string]DutySlot)
	for _, slot := range snapshot.Slots {
		if slot.Mandatory {
			mandatory[slot.ID] = slot
		}
	}

	assignedSlots := make(map[string]string, len(result.Assignments))
	for _, assignment := range result.Assignments {
		assignedSlots[assignment.SlotID] = assignment.EmployeeID
	}

	filled := 0
	for slotID := range mandatory {
		if _, ok := assignedSlots[slotID]; ok {
			filled++
		}
	}

	unfilledMandatory := 0
	softCount := 0
	hardOnMandatory := false
	blockingVacancy := false

	for _, unfilled := range result.UnfilledSlots {
		if _, ok := mandatory[unfilled.SlotID]; ok {
			unfilledMandatory++
		}
		if unfilled.BlocksPublish {
			blockingVacancy = true
		}
	}

	for _, violation := range result.Violations {
		switch violation.Severity {
		case rules.SeveritySoft:
			softCount++
		case rules.SeverityHard:
			if violation.SlotID == "" {
				// Period-level hard violations (e.g. missing skeleton)
				// always block publication.
				hardOnMandatory = true
			} else if _, ok := mandatory[violation.SlotID]; ok {
				if _, assigned := assignedSlots[violation.SlotID]; assigned {
					hardOnMandatory = true
				}
			}
		}
	}

	score := scoreMax -
		float64(unfilledMandatory)*penaltyUnfilledMandatory -
		float64(softCount)*penaltyPerSoftViolation
	if score < 0 {
		score = 0
	}

	result.Summary = Summary{
		Score: score,
		Coverage: Coverage{
			Filled:   filled,
			Required: len(mandatory),
		},
	}
	result.PublishAllowed = !blockingVacancy && !hardOnMandatory
}
