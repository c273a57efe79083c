package scoring

import "fmt"

// TitleSignals carries everything the arbiter needs to resolve a displayed
// grade: admin flags, the cached community summary, and the automated score
// used only for the low-trust fallback.
type TitleSignals struct {
	AdminRecommended bool
	AdminVerified    bool
	CommunityScore   float64
	CommunityCount   int
	AutoScore        float64
}

// GradeBadge is the resolved, renderable verdict for a title.
type GradeBadge struct {
	Grade       string `json:"grade"`
	Emoji       string `json:"emoji"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// minCommunityCount is the sample size below which a community average is
// not trusted for grading.
const minCommunityCount = 3

// ResolveGrade applies the trust precedence: admin recommendation, then
// admin verification, then a sufficiently sampled community average, then
// the automated score as an explicitly low-trust reference. Never fails: a
// title with no data at all resolves to the unrated state.
func ResolveGrade(sig TitleSignals) GradeBadge {
	if sig.AdminRecommended {
		return GradeBadge{
			Grade:       "S",
			Emoji:       "👑",
			Label:       "운영자 인증",
			Description: "운영자가 직접 검증한 안전한 작품",
			Color:       "bg-gradient-to-r from-purple-600 to-pink-600",
		}
	}

	if sig.AdminVerified {
		return GradeBadge{
			Grade:       "A",
			Emoji:       "✓",
			Label:       "운영자 검증",
			Description: "운영자가 안전하다고 확인한 작품",
			Color:       "bg-gradient-to-r from-blue-600 to-cyan-600",
		}
	}

	if sig.CommunityCount >= minCommunityCount {
		desc := fmt.Sprintf("커뮤니티 안전도 %.1f/10 (%d명 평가)", sig.CommunityScore, sig.CommunityCount)
		switch {
		case sig.CommunityScore >= 8.0:
			return GradeBadge{
				Grade:       "S",
				Emoji:       "🛡️",
				Label:       "커뮤니티 검증",
				Description: desc,
				Color:       "bg-gradient-to-r from-green-600 to-emerald-600",
			}
		case sig.CommunityScore >= 7.0:
			return GradeBadge{
				Grade:       "A",
				Emoji:       "👍",
				Label:       "커뮤니티 안전",
				Description: desc,
				Color:       "bg-gradient-to-r from-blue-500 to-cyan-500",
			}
		case sig.CommunityScore >= 5.0:
			return GradeBadge{
				Grade:       "B",
				Emoji:       "⚠️",
				Label:       "주의 필요",
				Description: desc,
				Color:       "bg-gradient-to-r from-yellow-500 to-orange-500",
			}
		default:
			return GradeBadge{
				Grade:       "C",
				Emoji:       "❌",
				Label:       "위험",
				Description: desc,
				Color:       "bg-gradient-to-r from-red-500 to-orange-600",
			}
		}
	}

	// Heuristic-only fallback. Deliberately a distinct low-trust category:
	// the automated score is reference material, not a verdict.
	return GradeBadge{
		Grade:       "?",
		Emoji:       "🤖",
		Label:       "AI 분석 참고",
		Description: fmt.Sprintf("AI 분석 점수: %.1f점 (참고용, 커뮤니티 평가 필요)", sig.AutoScore),
		Color:       "bg-gradient-to-r from-gray-500 to-gray-600",
	}
}
