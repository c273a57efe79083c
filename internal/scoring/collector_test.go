package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collectNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func postingAt(channelID string, monthsAgo float64) Posting {
	return Posting{
		ChannelID:   channelID,
		ChannelName: channelID,
		PublishedAt: collectNow.Add(-time.Duration(monthsAgo * float64(monthDuration))),
	}
}

func TestCollectAgeBuckets(t *testing.T) {
	postings := []Posting{
		postingAt("a", 7),   // old
		postingAt("b", 6),   // old, boundary inclusive
		postingAt("c", 5),   // medium
		postingAt("d", 3),   // medium, boundary inclusive
		postingAt("e", 2.9), // recent
		postingAt("f", 0),   // recent
	}

	agg := Collect(postings, EmptyRegistry(), collectNow)
	assert.Equal(t, 6, agg.SampledCount)
	assert.Equal(t, 2, agg.OldCount)
	assert.Equal(t, 2, agg.MediumCount)
	assert.Equal(t, 2, agg.RecentCount)
	assert.Equal(t, 6, agg.UniqueChannels)
}

func TestCollectEarliestPublish(t *testing.T) {
	postings := []Posting{
		postingAt("a", 2),
		postingAt("b", 9),
		postingAt("c", 5),
	}

	agg := Collect(postings, EmptyRegistry(), collectNow)
	require.NotNil(t, agg.EarliestPublish)
	assert.Equal(t, postings[1].PublishedAt, *agg.EarliestPublish)
}

func TestCollectEmpty(t *testing.T) {
	agg := Collect(nil, EmptyRegistry(), collectNow)
	assert.Equal(t, 0, agg.SampledCount)
	assert.Nil(t, agg.EarliestPublish)
	assert.Empty(t, agg.ForbiddenChannels)
	assert.Equal(t, 0, agg.UniqueChannels)
}

func TestCollectDeduplicatesRiskChannels(t *testing.T) {
	registry := Registry{
		Forbidden: map[string]ChannelInfo{
			"bad": {ChannelID: "bad", Reason: "takedown history"},
		},
		Warning: map[string]ChannelInfo{},
	}
	postings := []Posting{
		postingAt("bad", 1),
		postingAt("bad", 2),
		postingAt("bad", 3),
	}

	agg := Collect(postings, registry, collectNow)
	require.Len(t, agg.ForbiddenChannels, 1)
	assert.Equal(t, "bad", agg.ForbiddenChannels[0].ChannelID)
	assert.Equal(t, "takedown history", agg.ForbiddenChannels[0].Reason)
	assert.Equal(t, 3, agg.SampledCount)
	assert.Equal(t, 1, agg.UniqueChannels)
}

func TestCollectGroupsByChannel(t *testing.T) {
	postings := []Posting{
		postingAt("a", 1),
		postingAt("a", 2),
		postingAt("b", 1),
		{ChannelID: "", ChannelName: "orphan", PublishedAt: collectNow},
	}

	agg := Collect(postings, EmptyRegistry(), collectNow)
	assert.Len(t, agg.ChannelPostings["a"], 2)
	assert.Len(t, agg.ChannelPostings["b"], 1)
	// Postings with no channel id are counted but not grouped.
	assert.Equal(t, 2, agg.UniqueChannels)
	assert.Equal(t, 4, agg.SampledCount)
}

func TestCheckSmallChannels(t *testing.T) {
	channelPostings := map[string][]Posting{
		"small-old": {postingAt("small-old", 8), postingAt("small-old", 1)},
		"small-new": {postingAt("small-new", 1)},
		"big":       {postingAt("big", 12)},
		"unlisted":  {postingAt("unlisted", 7)},
	}
	subscribers := map[string]int{
		"small-old": 5000,
		"small-new": 9999,
		"big":       2000000,
	}

	result := CheckSmallChannels(channelPostings, subscribers, collectNow)
	// The big channel is excluded; the unlisted one defaults to small.
	assert.Equal(t, 3, result.ChannelCount)
	assert.Equal(t, 4, result.TotalPostings)
	assert.Equal(t, 2, result.OldPostings)
	assert.InDelta(t, 0.5, result.SafeRatio, 0.001)
	assert.True(t, result.IsSafe)
}

func TestCheckSmallChannelsNoSurvivors(t *testing.T) {
	channelPostings := map[string][]Posting{
		"small": {postingAt("small", 1), postingAt("small", 2)},
	}

	result := CheckSmallChannels(channelPostings, map[string]int{}, collectNow)
	assert.False(t, result.IsSafe)
	assert.Equal(t, 0, result.OldPostings)
	assert.Equal(t, 0.0, result.SafeRatio)
}

func TestMonthsBetween(t *testing.T) {
	from := collectNow.Add(-6 * monthDuration)
	assert.InDelta(t, 6.0, monthsBetween(from, collectNow), 0.001)
}
