package scoring

// Hybrid blend weights: community reports outweigh automation 60/40.
const (
	hybridAutoWeight      = 0.4
	hybridCommunityWeight = 0.6
)

// HybridScore is the blended presentation score when automated and community
// signals coexist, or a passthrough of whichever one exists.
type HybridScore struct {
	Score          float64  `json:"score"`
	Type           string   `json:"type"` // auto | community | hybrid
	Confidence     string   `json:"confidence"`
	AutoScore      *float64 `json:"auto_score,omitempty"`
	CommunityScore *float64 `json:"community_score,omitempty"`
}

// CombineHybrid blends an automated analysis with a community summary.
// Returns nil when neither input exists. The community summary only counts
// when it has at least one valid report.
func CombineHybrid(auto *Analysis, community *Summary) *HybridScore {
	hasAuto := auto != nil && !auto.NoVideosFound
	hasCommunity := community != nil && community.Count > 0

	switch {
	case !hasAuto && !hasCommunity:
		return nil
	case hasAuto && !hasCommunity:
		return &HybridScore{
			Score:      auto.TotalScore,
			Type:       "auto",
			Confidence: ConfidenceMedium,
		}
	case !hasAuto && hasCommunity:
		return &HybridScore{
			Score:      community.Score,
			Type:       "community",
			Confidence: community.Confidence,
		}
	}

	autoScore := auto.TotalScore
	communityScore := community.Score
	return &HybridScore{
		Score:          round1(autoScore*hybridAutoWeight + communityScore*hybridCommunityWeight),
		Type:           "hybrid",
		Confidence:     ConfidenceHigh,
		AutoScore:      &autoScore,
		CommunityScore: &communityScore,
	}
}
