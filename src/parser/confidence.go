package parser

// scoreConfidence derives the confidence score and review flag from which
// signals resolved. A result without a usable amount always lands in the
// lowest bucket and is flagged for review, merchant or not, because a record
// needs a positive amount to be actionable.
func scoreConfidence(hasAmount, hasMerchant bool) (confidence float64, needsReview bool) {
	switch {
	case hasAmount && hasMerchant:
		return 0.9, false
	case hasAmount:
		return 0.7, false
	default:
		return 0.5, true
	}
}
