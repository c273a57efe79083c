package scoring

import (
	"fmt"
	"math"
	"time"
)

// Recommendation is the letter grade attached to an automated analysis.
type Recommendation struct {
	Level       string `json:"level"`
	Emoji       string `json:"emoji"`
	Text        string `json:"text"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Analysis is the automated scoring snapshot for one title. Stored on the
// title as jsonb and overwritten on every re-run.
type Analysis struct {
	TotalCount      int        `json:"total_count"`
	SampledCount    int        `json:"sampled_count"`
	OldCount        int        `json:"old_count"`
	MediumCount     int        `json:"medium_count"`
	RecentCount     int        `json:"recent_count"`
	EarliestPublish *time.Time `json:"earliest_publish,omitempty"`
	UniqueChannels  int        `json:"unique_channels"`

	IsForbidden       bool          `json:"is_forbidden"`
	ForbiddenChannels []ChannelInfo `json:"forbidden_channels,omitempty"`
	HasWarningChannel bool          `json:"has_warning_channel"`
	WarningChannels   []ChannelInfo `json:"warning_channels,omitempty"`

	SafetyScore      int     `json:"safety_score"`
	CompetitionScore int     `json:"competition_score"`
	TotalScore       float64 `json:"total_score"`

	Recommendation Recommendation `json:"recommendation"`

	SmallChannels *SmallChannelSafety `json:"small_channels,omitempty"`

	// NoVideosFound marks the uninformative terminal state: the search
	// returned nothing, so no numeric grade is meaningful.
	NoVideosFound bool `json:"no_videos_found"`

	SearchQuery string    `json:"search_query,omitempty"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
}

// Analyze converts a collected aggregate plus the platform-reported total
// count into scores and a grade. totalCount may exceed the sampled batch
// (the search page size is capped at 50). Pure function: identical inputs
// produce identical output.
func Analyze(agg Aggregate, totalCount int, analyzedAt time.Time) Analysis {
	a := Analysis{
		TotalCount:        totalCount,
		SampledCount:      agg.SampledCount,
		OldCount:          agg.OldCount,
		MediumCount:       agg.MediumCount,
		RecentCount:       agg.RecentCount,
		EarliestPublish:   agg.EarliestPublish,
		UniqueChannels:    agg.UniqueChannels,
		IsForbidden:       len(agg.ForbiddenChannels) > 0,
		ForbiddenChannels: agg.ForbiddenChannels,
		HasWarningChannel: len(agg.WarningChannels) > 0,
		WarningChannels:   agg.WarningChannels,
		AnalyzedAt:        analyzedAt,
	}

	if agg.SampledCount == 0 {
		a.NoVideosFound = true
		return a
	}

	a.SafetyScore = SafetyScore(agg.OldCount, agg.MediumCount, agg.SampledCount)
	a.CompetitionScore = CompetitionScore(totalCount)
	a.TotalScore = CombinedScore(a.SafetyScore, a.CompetitionScore)
	a.Recommendation = RecommendationFor(a.TotalScore, a.SafetyScore, a.CompetitionScore)
	return a
}

// SafetyScore favors titles whose postings have survived a long time.
// Base points come from the 6-month-plus ratio, a bonus from the
// 3-month-plus ratio. Capped at 10.
func SafetyScore(oldCount, mediumCount, sampledCount int) int {
	if sampledCount == 0 {
		return 0
	}

	oldRatio := float64(oldCount) / float64(sampledCount)
	mediumPlusRatio := float64(oldCount+mediumCount) / float64(sampledCount)

	var score int
	switch {
	case oldRatio >= 0.8:
		score = 7
	case oldRatio >= 0.6:
		score = 6
	case oldRatio >= 0.4:
		score = 5
	case oldRatio >= 0.2:
		score = 4
	default:
		score = 3
	}

	switch {
	case mediumPlusRatio >= 0.9:
		score += 3
	case mediumPlusRatio >= 0.7:
		score += 2
	case mediumPlusRatio >= 0.5:
		score += 1
	}

	if score > 10 {
		score = 10
	}
	return score
}

// CompetitionScore rewards scarcity: the fewer existing postings, the higher
// the score. Strictly non-increasing in totalCount.
func CompetitionScore(totalCount int) int {
	switch {
	case totalCount == 0:
		return 10
	case totalCount < 10:
		return 9
	case totalCount < 30:
		return 8
	case totalCount < 50:
		return 7
	case totalCount < 100:
		return 6
	case totalCount < 200:
		return 5
	case totalCount < 500:
		return 4
	case totalCount < 1000:
		return 2
	default:
		return 0
	}
}

// CombinedScore blends safety 60% with competition 40%, one decimal.
func CombinedScore(safety, competition int) float64 {
	return round1(float64(safety)*0.6 + float64(competition)*0.4)
}

// RecommendationFor assigns the S..F grade. First match wins: S requires a
// 9+ combined score or both sub-scores at 8+.
func RecommendationFor(totalScore float64, safety, competition int) Recommendation {
	text := fmt.Sprintf("종합점수 %.1f점", totalScore)

	switch {
	case totalScore >= 9 || (safety >= 8 && competition >= 8):
		return Recommendation{
			Level:       "S",
			Emoji:       "🌟",
			Text:        text,
			Description: "안전하고 경쟁도 낮음",
			Color:       "bg-gradient-to-r from-yellow-400 to-orange-500",
		}
	case totalScore >= 8:
		return Recommendation{
			Level:       "A",
			Emoji:       "✨",
			Text:        text,
			Description: "제작하기 좋은 작품",
			Color:       "bg-gradient-to-r from-green-400 to-blue-500",
		}
	case totalScore >= 7:
		return Recommendation{
			Level:       "B",
			Emoji:       "👍",
			Text:        text,
			Description: "괜찮은 선택입니다",
			Color:       "bg-gradient-to-r from-blue-400 to-cyan-500",
		}
	case totalScore >= 6:
		return Recommendation{
			Level:       "C",
			Emoji:       "🤔",
			Text:        text,
			Description: "신중하게 선택하세요",
			Color:       "bg-gradient-to-r from-gray-400 to-gray-500",
		}
	case totalScore >= 5:
		return Recommendation{
			Level:       "D",
			Emoji:       "⚠️",
			Text:        text,
			Description: "리스크가 있을 수 있어요",
			Color:       "bg-gradient-to-r from-yellow-500 to-orange-600",
		}
	default:
		return Recommendation{
			Level:       "F",
			Emoji:       "❌",
			Text:        text,
			Description: "다른 작품을 찾아보세요",
			Color:       "bg-gradient-to-r from-red-500 to-pink-600",
		}
	}
}

// CompetitionLabel describes how saturated the shorts market is for the
// given platform-reported total.
func CompetitionLabel(totalCount int) string {
	switch {
	case totalCount == 0:
		return "블루오션"
	case totalCount < 10:
		return "거의 없음"
	case totalCount < 50:
		return "매우 낮음"
	case totalCount < 100:
		return "낮음"
	case totalCount < 200:
		return "보통"
	case totalCount < 500:
		return "높음"
	case totalCount < 1000:
		return "매우 높음"
	default:
		return "레드오션"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
