package session

import "math"

// Tier buckets a quiz percentage into a feedback message band.
type Tier int

const (
	TierNeedsReview Tier = iota
	TierGood
	TierExcellent
)

// String returns the tier label used in history records.
func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	default:
		return "needs-review"
	}
}

// Message returns the learner-facing line for the tier.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent! You've got a solid grip on this topic."
	case TierGood:
		return "Good work! Review the explanations to close the gaps."
	default:
		return "Let's go over the material again and check each explanation."
	}
}

// Result is the declarative quiz outcome. Rendering it is left to the
// presentation layer.
type Result struct {
	Score      int
	Total      int
	Percentage float64
	Tier       Tier
}

// ComputeResult derives the final score summary from a finished quiz.
// Percentage is rounded to one decimal place; the 80 and 60 boundaries
// belong to the higher tier.
func ComputeResult(s *State) Result {
	total := s.Quiz.Len()
	pct := math.Round(float64(s.Score)/float64(total)*1000) / 10

	tier := TierNeedsReview
	switch {
	case pct >= 80:
		tier = TierExcellent
	case pct >= 60:
		tier = TierGood
	}

	return Result{
		Score:      s.Score,
		Total:      total,
		Percentage: pct,
		Tier:       tier,
	}
}
