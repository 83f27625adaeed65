// README: Range checks for extracted slot values.
package planner

const (
	minNights = 1
	maxNights = 14

	minBudget = 100_000
	maxBudget = 10_000_000

	minPeople = 1
	maxPeople = 10
)

// ValidateDuration reports whether a nights candidate is storable.
// Rejected candidates are dropped without surfacing the message to the
// user; the message is kept for callers that want it.
func ValidateDuration(nights int) (bool, string) {
	if nights < minNights || nights > maxNights {
		return false, "기간은 1박에서 14박 사이여야 합니다."
	}
	return true, ""
}

// ValidateBudget reports whether a per-person budget candidate is storable.
func ValidateBudget(won int) (bool, string) {
	if won < minBudget || won > maxBudget {
		return false, "예산은 10만원에서 1000만원 사이여야 합니다."
	}
	return true, ""
}

// ValidateNumPeople reports whether a party-size candidate is storable.
func ValidateNumPeople(n int) (bool, string) {
	if n < minPeople || n > maxPeople {
		return false, "인원은 1명에서 10명 사이여야 합니다."
	}
	return true, ""
}
