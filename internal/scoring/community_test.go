package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func cleanReport(months int) Report {
	return Report{
		ShortsCreated:     true,
		MonthsSinceUpload: months,
		SubmittedAt:       reportNow,
	}
}

func deletedReport() Report {
	return Report{
		ShortsCreated: true,
		ShortsDeleted: true,
		SubmittedAt:   reportNow,
	}
}

func TestReportScore(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		want     int
		scorable bool
	}{
		{"admin always ten", Report{IsAdminRating: true}, 10, true},
		{"not attempted", Report{ShortsCreated: false}, 0, false},
		{"clean recent", cleanReport(0), 7, true},
		{"clean three months", cleanReport(3), 8, true},
		{"clean six months", cleanReport(6), 9, true},
		{"clean twelve months", cleanReport(12), 10, true},
		{"deleted without claim", deletedReport(), 5, true},
		{
			"claimed still up",
			Report{ShortsCreated: true, CopyrightIssue: true, SubmittedAt: reportNow},
			3, true,
		},
		{
			"claimed and deleted",
			Report{ShortsCreated: true, CopyrightIssue: true, ShortsDeleted: true, SubmittedAt: reportNow},
			0, true,
		},
		{
			"claimed and deleted with survival bonus",
			Report{ShortsCreated: true, CopyrightIssue: true, ShortsDeleted: true, MonthsSinceUpload: 12, SubmittedAt: reportNow},
			3, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReportScore(tt.report)
			assert.Equal(t, tt.scorable, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, reportNow)
	assert.Equal(t, 0.0, s.Score)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, ConfidenceNone, s.Confidence)
	assert.Equal(t, LevelUnknown, s.SafetyLevel)
}

func TestSummarizeNoneAttempted(t *testing.T) {
	reports := []Report{
		{ShortsCreated: false, SubmittedAt: reportNow},
		{ShortsCreated: false, SubmittedAt: reportNow},
	}

	s := Summarize(reports, reportNow)
	assert.Equal(t, ConfidenceNone, s.Confidence)
	assert.Equal(t, LevelUnknown, s.SafetyLevel)
	assert.Equal(t, 0, s.Count)
}

func TestSummarizeAdminShortCircuit(t *testing.T) {
	reports := []Report{
		deletedReport(),
		deletedReport(),
		{IsAdminRating: true, SubmittedAt: reportNow},
		{ShortsCreated: false, SubmittedAt: reportNow},
	}

	s := Summarize(reports, reportNow)
	assert.Equal(t, 10.0, s.Score)
	assert.Equal(t, ConfidenceAdmin, s.Confidence)
	assert.Equal(t, LevelAdminVerified, s.SafetyLevel)
	// Admin verdict reports the full submission count, not just valid ones.
	assert.Equal(t, 4, s.Count)
	// Deletion ceiling does not apply to an admin verdict.
	assert.Equal(t, 0, s.DeletionCount)
}

func TestSummarizeSingleCleanReport(t *testing.T) {
	s := Summarize([]Report{cleanReport(0)}, reportNow)
	assert.Equal(t, 7.0, s.Score)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, ConfidenceLow, s.Confidence)
	assert.Equal(t, LevelSafe, s.SafetyLevel)
	assert.Equal(t, 0, s.DeletionCount)
}

func TestSummarizeVerySafe(t *testing.T) {
	reports := []Report{
		cleanReport(12),
		cleanReport(12),
		cleanReport(6),
	}

	s := Summarize(reports, reportNow)
	// (10+10+9)/3 = 9.7 with equal weights
	assert.InDelta(t, 9.7, s.Score, 0.001)
	assert.Equal(t, ConfidenceMedium, s.Confidence)
	assert.Equal(t, LevelVerySafe, s.SafetyLevel)
}

func TestSummarizeFiveCleanSurvivors(t *testing.T) {
	var reports []Report
	for i := 0; i < 5; i++ {
		reports = append(reports, cleanReport(6))
	}

	s := Summarize(reports, reportNow)
	// Every report scores 7+2 with equal weights.
	assert.Equal(t, 9.0, s.Score)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, ConfidenceMedium, s.Confidence)
	assert.Equal(t, LevelVerySafe, s.SafetyLevel)
	assert.Equal(t, 0.0, s.DeletionRatio)
}

func TestSummarizeDeletionDanger(t *testing.T) {
	var reports []Report
	for i := 0; i < 4; i++ {
		reports = append(reports, deletedReport())
	}
	for i := 0; i < 6; i++ {
		reports = append(reports, cleanReport(0))
	}

	s := Summarize(reports, reportNow)
	// Raw average is 6.2 but a 40% deletion ratio caps the score at 4.
	assert.Equal(t, 4.0, s.Score)
	assert.Equal(t, LevelDanger, s.SafetyLevel)
	assert.Equal(t, 4, s.DeletionCount)
	assert.InDelta(t, 0.4, s.DeletionRatio, 0.001)
	assert.Equal(t, ConfidenceHigh, s.Confidence)
}

func TestSummarizeDeletionCaution(t *testing.T) {
	reports := []Report{deletedReport()}
	for i := 0; i < 9; i++ {
		reports = append(reports, cleanReport(0))
	}

	s := Summarize(reports, reportNow)
	// Raw average is 6.8; a 10% deletion ratio caps at 6.
	assert.Equal(t, 6.0, s.Score)
	assert.Equal(t, LevelCaution, s.SafetyLevel)
	assert.InDelta(t, 0.1, s.DeletionRatio, 0.001)
}

func TestSummarizeDeletionWarning(t *testing.T) {
	reports := []Report{deletedReport()}
	for i := 0; i < 19; i++ {
		reports = append(reports, cleanReport(0))
	}

	s := Summarize(reports, reportNow)
	// 5% deletion ratio: the cap is 7 and the level warns, but the raw
	// average of 6.9 already sits below the cap.
	assert.InDelta(t, 6.9, s.Score, 0.001)
	assert.Equal(t, LevelWarning, s.SafetyLevel)
	assert.Equal(t, 1, s.DeletionCount)
}

func TestSummarizeRecencyWeighting(t *testing.T) {
	fresh := cleanReport(0) // score 7, weight 1.5
	old := Report{          // score 10, weight 0.8
		ShortsCreated:     true,
		MonthsSinceUpload: 12,
		SubmittedAt:       reportNow.Add(-7 * monthDuration),
	}

	s := Summarize([]Report{fresh, old}, reportNow)
	// (7*1.5 + 10*0.8) / 2.3 = 8.04 -> 8.0
	assert.InDelta(t, 8.0, s.Score, 0.001)
	assert.Equal(t, LevelVerySafe, s.SafetyLevel)
	assert.Equal(t, ConfidenceLow, s.Confidence)
}

func TestSummarizeIgnoresNotAttempted(t *testing.T) {
	reports := []Report{
		cleanReport(0),
		{ShortsCreated: false, SubmittedAt: reportNow},
		{ShortsCreated: false, SubmittedAt: reportNow},
	}

	s := Summarize(reports, reportNow)
	require.Equal(t, 1, s.Count)
	assert.Equal(t, 7.0, s.Score)
	assert.Equal(t, ConfidenceLow, s.Confidence)
}

func TestRecencyWeight(t *testing.T) {
	assert.Equal(t, 1.5, recencyWeight(0.5))
	assert.Equal(t, 1.2, recencyWeight(1))
	assert.Equal(t, 1.2, recencyWeight(2.9))
	assert.Equal(t, 1.0, recencyWeight(3))
	assert.Equal(t, 1.0, recencyWeight(5.9))
	assert.Equal(t, 0.8, recencyWeight(6))
	assert.Equal(t, 0.8, recencyWeight(24))
}
