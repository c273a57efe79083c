package scoring

import (
	"math"
	"time"
)

// Confidence tiers for a community summary, by valid report count.
const (
	ConfidenceNone   = "none"
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
	ConfidenceAdmin  = "admin"
)

// Safety level tags attached to a community summary.
const (
	LevelUnknown       = "unknown"
	LevelSafe          = "safe"
	LevelVerySafe      = "very_safe"
	LevelWarning       = "warning"
	LevelCaution       = "caution"
	LevelDanger        = "danger"
	LevelAdminVerified = "admin_verified"
)

// Report is one crowd-sourced production outcome for a title. Reports are
// append-only; a report with ShortsCreated false means "not yet attempted"
// and contributes nothing to the aggregate.
type Report struct {
	ShortsCreated     bool
	CopyrightIssue    bool
	ShortsDeleted     bool
	MonthsSinceUpload int
	Comment           string
	IsAdminRating     bool
	SubmittedAt       time.Time
}

// Summary is the trust-weighted community verdict for a title. Always a pure
// function of the report list.
type Summary struct {
	Score         float64 `json:"score"`
	Count         int     `json:"count"`
	Confidence    string  `json:"confidence"`
	DeletionCount int     `json:"deletion_count"`
	DeletionRatio float64 `json:"deletion_ratio"`
	SafetyLevel   string  `json:"safety_level"`
}

// ReportScore computes the individual 0-10 score for one report. The second
// result is false when the report cannot be scored (production not
// attempted). Admin reports always score 10.
func ReportScore(r Report) (int, bool) {
	if r.IsAdminRating {
		return 10, true
	}
	if !r.ShortsCreated {
		return 0, false
	}

	var base int
	switch {
	case r.CopyrightIssue && r.ShortsDeleted:
		base = 0 // claimed and taken down
	case r.CopyrightIssue:
		base = 3 // claimed but still up: unresolved dispute
	case r.ShortsDeleted:
		base = 5 // removed without a claim
	default:
		base = 7
	}

	// Survival bonus: the longer the short has stayed up, the safer.
	switch {
	case r.MonthsSinceUpload >= 12:
		base += 3
	case r.MonthsSinceUpload >= 6:
		base += 2
	case r.MonthsSinceUpload >= 3:
		base += 1
	}

	if base > 10 {
		base = 10
	}
	return base, true
}

// Summarize aggregates a title's reports into a Summary.
//
// Any admin report short-circuits to a forced 10.0. Otherwise reports from
// members who actually produced a short are scored individually, weighted
// toward recent submissions, and averaged. The deletion penalty is a ceiling,
// not a subtraction: one takedown among many clean outcomes still caps the
// displayed score, because a false "safe" is costlier than a false "risky".
func Summarize(reports []Report, now time.Time) Summary {
	if len(reports) == 0 {
		return Summary{Confidence: ConfidenceNone, SafetyLevel: LevelUnknown}
	}

	for _, r := range reports {
		if r.IsAdminRating {
			return Summary{
				Score:       10.0,
				Count:       len(reports),
				Confidence:  ConfidenceAdmin,
				SafetyLevel: LevelAdminVerified,
			}
		}
	}

	var valid []Report
	for _, r := range reports {
		if r.ShortsCreated {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return Summary{Confidence: ConfidenceNone, SafetyLevel: LevelUnknown}
	}

	deletionCount := 0
	for _, r := range valid {
		if r.ShortsDeleted {
			deletionCount++
		}
	}
	deletionRatio := float64(deletionCount) / float64(len(valid))

	var weightedSum, totalWeight float64
	for _, r := range valid {
		score, ok := ReportScore(r)
		if !ok {
			continue
		}
		w := recencyWeight(monthsBetween(r.SubmittedAt, now))
		weightedSum += float64(score) * w
		totalWeight += w
	}

	score := round1(weightedSum / totalWeight)

	level := LevelSafe
	switch {
	case deletionRatio >= 0.4:
		score = math.Min(score, 4.0)
		level = LevelDanger
	case deletionRatio >= 0.1:
		score = math.Min(score, 6.0)
		level = LevelCaution
	case deletionCount > 0:
		score = math.Min(score, 7.0)
		level = LevelWarning
	case score >= 8.0:
		level = LevelVerySafe
	}

	confidence := ConfidenceLow
	switch {
	case len(valid) >= 10:
		confidence = ConfidenceHigh
	case len(valid) >= 3:
		confidence = ConfidenceMedium
	}

	return Summary{
		Score:         score,
		Count:         len(valid),
		Confidence:    confidence,
		DeletionCount: deletionCount,
		DeletionRatio: math.Round(deletionRatio*100) / 100,
		SafetyLevel:   level,
	}
}

func recencyWeight(ageInMonths float64) float64 {
	switch {
	case ageInMonths < 1:
		return 1.5
	case ageInMonths < 3:
		return 1.2
	case ageInMonths < 6:
		return 1.0
	default:
		return 0.8
	}
}
