package roster

import (
	"sort"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
)

// Candidate is one eligible employee for a slot, with the soft
// penalties that order it against the other candidates.
type Candidate struct {
	Employee       Employee
	SoftViolations []Violation
	SoftPenalty    float64
}

// Ranking is the outcome of evaluating every employee for one slot
type Ranking struct {
	// Candidates is ordered best-first: ascending soft-violation count,
	// then ascending weighted penalty, then employee ID.
	Candidates []Candidate

	// BlockedBy is the union of hard codes observed across all
	// excluded employees, deduplicated and sorted.
	BlockedBy []rules.Code
}

// Rank evaluates all employees for the slot and orders the eligible
// subset. The ordering is total, so identical inputs always produce an
// identical ranking.
func Rank(catalog *rules.Catalog, evaluator Evaluator, slot DutySlot, employees []Employee, running *Accumulator) Ranking {
	var ranking Ranking
	blocked := make(map[rules.Code]bool)

	for _, emp := range employees {
		violations := evaluator.Evaluate(emp, slot, running)

		hardCodes := HardCodes(violations)
		if len(hardCodes) > 0 {
			for _, code := range hardCodes {
				blocked[code] = true
			}
			continue
		}

		candidate := Candidate{Employee: emp}
		for _, v := range violations {
			candidate.SoftViolations = append(candidate.SoftViolations, v)
			candidate.SoftPenalty += catalog.Weight(v.Code)
		}
		ranking.Candidates = append(ranking.Candidates, candidate)
	}

	sort.Slice(ranking.Candidates, func(i, j int) bool {
		a, b := ranking.Candidates[i], ranking.Candidates[j]
		if len(a.SoftViolations) != len(b.SoftViolations) {
			return len(a.SoftViolations) < len(b.SoftViolations)
		}
		if a.SoftPenalty != b.SoftPenalty {
			return a.SoftPenalty < b.SoftPenalty
		}
		return a.Employee.ID < b.Employee.ID
	})

	ranking.BlockedBy = sortedCodes(blocked)
	return ranking
}

func sortedCodes(set map[rules.Code]bool) []rules.Code {
	codes := make([]rules.Code, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
