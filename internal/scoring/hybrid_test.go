package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineHybridNeither(t *testing.T) {
	assert.Nil(t, CombineHybrid(nil, nil))

	// A no-videos analysis and an empty summary both count as absent.
	assert.Nil(t, CombineHybrid(&Analysis{NoVideosFound: true}, &Summary{Count: 0}))
}

func TestCombineHybridAutoOnly(t *testing.T) {
	h := CombineHybrid(&Analysis{TotalScore: 8.6}, nil)
	require.NotNil(t, h)
	assert.Equal(t, "auto", h.Type)
	assert.Equal(t, 8.6, h.Score)
	assert.Equal(t, ConfidenceMedium, h.Confidence)
	assert.Nil(t, h.AutoScore)
	assert.Nil(t, h.CommunityScore)
}

func TestCombineHybridCommunityOnly(t *testing.T) {
	summary := &Summary{Score: 6.0, Count: 4, Confidence: ConfidenceMedium}

	h := CombineHybrid(&Analysis{NoVideosFound: true}, summary)
	require.NotNil(t, h)
	assert.Equal(t, "community", h.Type)
	assert.Equal(t, 6.0, h.Score)
	assert.Equal(t, ConfidenceMedium, h.Confidence)
}

func TestCombineHybridBlend(t *testing.T) {
	auto := &Analysis{TotalScore: 8.0}
	summary := &Summary{Score: 6.0, Count: 5, Confidence: ConfidenceMedium}

	h := CombineHybrid(auto, summary)
	require.NotNil(t, h)
	assert.Equal(t, "hybrid", h.Type)
	// 8.0*0.4 + 6.0*0.6 = 6.8
	assert.InDelta(t, 6.8, h.Score, 0.001)
	assert.Equal(t, ConfidenceHigh, h.Confidence)
	require.NotNil(t, h.AutoScore)
	require.NotNil(t, h.CommunityScore)
	assert.Equal(t, 8.0, *h.AutoScore)
	assert.Equal(t, 6.0, *h.CommunityScore)
}

func TestCombineHybridCommunityOutweighsAuto(t *testing.T) {
	auto := &Analysis{TotalScore: 10.0}
	summary := &Summary{Score: 0.0, Count: 10, Confidence: ConfidenceHigh}

	h := CombineHybrid(auto, summary)
	require.NotNil(t, h)
	// The community side carries 60% of the weight.
	assert.InDelta(t, 4.0, h.Score, 0.001)
}
