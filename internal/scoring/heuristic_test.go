package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafetyScore(t *testing.T) {
	tests := []struct {
		name    string
		old     int
		medium  int
		sampled int
		want    int
	}{
		{"no samples", 0, 0, 0, 0},
		{"all recent", 0, 0, 10, 3},
		{"all old", 10, 0, 10, 10},
		{"old ratio 0.8 with bonus", 8, 0, 10, 9},
		{"old ratio 0.8 full medium-plus", 8, 2, 10, 10},
		{"old ratio 0.6 medium-plus 0.9", 6, 3, 10, 9},
		{"old ratio 0.4", 4, 0, 10, 5},
		{"old ratio 0.2", 2, 0, 10, 4},
		{"medium only at 0.5", 0, 5, 10, 4},
		{"single old posting", 1, 0, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafetyScore(tt.old, tt.medium, tt.sampled))
		})
	}
}

func TestSafetyScoreNeverExceedsTen(t *testing.T) {
	for old := 0; old <= 10; old++ {
		for medium := 0; medium+old <= 10; medium++ {
			score := SafetyScore(old, medium, 10)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 10)
		}
	}
}

func TestCompetitionScore(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 10},
		{1, 9},
		{9, 9},
		{10, 8},
		{29, 8},
		{30, 7},
		{49, 7},
		{50, 6},
		{99, 6},
		{100, 5},
		{199, 5},
		{200, 4},
		{499, 4},
		{500, 2},
		{999, 2},
		{1000, 0},
		{100000, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CompetitionScore(tt.total), "totalCount=%d", tt.total)
	}
}

func TestCompetitionScoreNonIncreasing(t *testing.T) {
	prev := CompetitionScore(0)
	for total := 1; total <= 2000; total++ {
		cur := CompetitionScore(total)
		assert.LessOrEqual(t, cur, prev, "totalCount=%d", total)
		prev = cur
	}
}

func TestCombinedScore(t *testing.T) {
	assert.InDelta(t, 8.6, CombinedScore(9, 8), 0.001)
	assert.InDelta(t, 10.0, CombinedScore(10, 10), 0.001)
	assert.InDelta(t, 0.0, CombinedScore(0, 0), 0.001)
	assert.InDelta(t, 6.0, CombinedScore(10, 0), 0.001)
	assert.InDelta(t, 4.0, CombinedScore(0, 10), 0.001)
}

func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		safety      int
		competition int
		wantLevel   string
	}{
		{"combined nine is S", 9.0, 9, 9, "S"},
		{"both subscores at eight is S", 8.6, 8, 8, "S"},
		{"eight combined only", 8.0, 9, 6, "A"},
		{"seven combined", 7.2, 7, 7, "B"},
		{"six combined", 6.0, 6, 6, "C"},
		{"five combined", 5.4, 5, 6, "D"},
		{"below five", 4.9, 5, 4, "F"},
		{"zero", 0.0, 0, 0, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := RecommendationFor(tt.total, tt.safety, tt.competition)
			assert.Equal(t, tt.wantLevel, rec.Level)
			assert.NotEmpty(t, rec.Emoji)
			assert.NotEmpty(t, rec.Description)
			assert.Contains(t, rec.Text, "종합점수")
		})
	}
}

func TestAnalyzeNoVideosFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	agg := Collect(nil, EmptyRegistry(), now)

	a := Analyze(agg, 0, now)
	assert.True(t, a.NoVideosFound)
	assert.Equal(t, 0, a.SafetyScore)
	assert.Equal(t, 0, a.CompetitionScore)
	assert.Equal(t, 0.0, a.TotalScore)
	assert.Empty(t, a.Recommendation.Level)
}

func TestAnalyzeDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	postings := []Posting{
		{ChannelID: "a", ChannelName: "A", PublishedAt: now.Add(-8 * monthDuration)},
		{ChannelID: "b", ChannelName: "B", PublishedAt: now.Add(-4 * monthDuration)},
		{ChannelID: "c", ChannelName: "C", PublishedAt: now.Add(-1 * monthDuration)},
	}

	first := Analyze(Collect(postings, EmptyRegistry(), now), 25, now)
	second := Analyze(Collect(postings, EmptyRegistry(), now), 25, now)
	assert.Equal(t, first, second)
}

func TestAnalyzeRiskFlags(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	registry := Registry{
		Forbidden: map[string]ChannelInfo{
			"bad": {ChannelID: "bad", Reason: "repeat infringer"},
		},
		Warning: map[string]ChannelInfo{
			"iffy": {ChannelID: "iffy", Reason: "strikes reported"},
		},
	}
	postings := []Posting{
		{ChannelID: "bad", ChannelName: "Bad", PublishedAt: now.Add(-7 * monthDuration)},
		{ChannelID: "iffy", ChannelName: "Iffy", PublishedAt: now.Add(-7 * monthDuration)},
		{ChannelID: "ok", ChannelName: "OK", PublishedAt: now.Add(-7 * monthDuration)},
	}

	a := Analyze(Collect(postings, registry, now), 3, now)
	require.True(t, a.IsForbidden)
	require.True(t, a.HasWarningChannel)
	assert.Len(t, a.ForbiddenChannels, 1)
	assert.Len(t, a.WarningChannels, 1)
	assert.Equal(t, "repeat infringer", a.ForbiddenChannels[0].Reason)

	// Risk-tagged postings still count toward the age buckets.
	assert.Equal(t, 3, a.OldCount)
	assert.Equal(t, 3, a.SampledCount)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var postings []Posting
	for i := 0; i < 8; i++ {
		postings = append(postings, Posting{
			ChannelID:   fmt.Sprintf("old-%d", i),
			PublishedAt: now.Add(-7 * monthDuration),
		})
	}
	for i := 0; i < 2; i++ {
		postings = append(postings, Posting{
			ChannelID:   fmt.Sprintf("new-%d", i),
			PublishedAt: now.Add(-1 * monthDuration),
		})
	}

	a := Analyze(Collect(postings, EmptyRegistry(), now), 10, now)
	assert.Equal(t, 9, a.SafetyScore)
	assert.Equal(t, 8, a.CompetitionScore)
	assert.InDelta(t, 8.6, a.TotalScore, 0.001)
	// Both subscores at 8+ promote to S even below a 9.0 combined score.
	assert.Equal(t, "S", a.Recommendation.Level)
	assert.False(t, a.NoVideosFound)
}

func TestCompetitionLabel(t *testing.T) {
	assert.Equal(t, "블루오션", CompetitionLabel(0))
	assert.Equal(t, "거의 없음", CompetitionLabel(5))
	assert.Equal(t, "매우 낮음", CompetitionLabel(30))
	assert.Equal(t, "레드오션", CompetitionLabel(1000))
}
