package scoring

import "time"

const monthDuration = 30 * 24 * time.Hour

// Posting is one discovered short-form video for a title, as returned by the
// video-platform search. Postings are never persisted; only aggregates are.
type Posting struct {
	ChannelID   string
	ChannelName string
	PublishedAt time.Time
}

// ChannelInfo describes an entry in the excluded-channel registry.
type ChannelInfo struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	Reason      string `json:"reason"`
}

// Registry is a read-only snapshot of the excluded-channel registry, keyed by
// channel id. A channel id appears in at most one tier.
type Registry struct {
	Forbidden map[string]ChannelInfo
	Warning   map[string]ChannelInfo
}

// EmptyRegistry returns a registry with no entries. Used when the registry
// fetch fails and the caller chooses to analyze without risk detection.
func EmptyRegistry() Registry {
	return Registry{
		Forbidden: make(map[string]ChannelInfo),
		Warning:   make(map[string]ChannelInfo),
	}
}

// Aggregate is the Signal Collector output: posting counts bucketed by age,
// the earliest publish time seen, risk-tagged channels, and per-channel
// posting groups for the small-channel check.
type Aggregate struct {
	SampledCount    int
	OldCount        int // published 6+ months ago
	MediumCount     int // 3 to 6 months
	RecentCount     int // under 3 months
	EarliestPublish *time.Time

	ForbiddenChannels []ChannelInfo
	WarningChannels   []ChannelInfo

	ChannelPostings map[string][]Posting
	UniqueChannels  int
}

// Collect partitions a batch of postings by age bucket and classifies their
// channels against the registry. Risk-tagged postings still count toward the
// age buckets: risk detection flags the title, it does not exclude samples.
func Collect(postings []Posting, registry Registry, now time.Time) Aggregate {
	agg := Aggregate{
		SampledCount:    len(postings),
		ChannelPostings: make(map[string][]Posting),
	}

	seenForbidden := make(map[string]bool)
	seenWarning := make(map[string]bool)

	for _, p := range postings {
		if info, ok := registry.Forbidden[p.ChannelID]; ok && !seenForbidden[p.ChannelID] {
			seenForbidden[p.ChannelID] = true
			agg.ForbiddenChannels = append(agg.ForbiddenChannels, ChannelInfo{
				ChannelID:   p.ChannelID,
				ChannelName: p.ChannelName,
				Reason:      info.Reason,
			})
		}
		if info, ok := registry.Warning[p.ChannelID]; ok && !seenWarning[p.ChannelID] {
			seenWarning[p.ChannelID] = true
			agg.WarningChannels = append(agg.WarningChannels, ChannelInfo{
				ChannelID:   p.ChannelID,
				ChannelName: p.ChannelName,
				Reason:      info.Reason,
			})
		}

		if agg.EarliestPublish == nil || p.PublishedAt.Before(*agg.EarliestPublish) {
			published := p.PublishedAt
			agg.EarliestPublish = &published
		}

		monthsAgo := monthsBetween(p.PublishedAt, now)
		switch {
		case monthsAgo >= 6:
			agg.OldCount++
		case monthsAgo >= 3:
			agg.MediumCount++
		default:
			agg.RecentCount++
		}

		if p.ChannelID != "" {
			agg.ChannelPostings[p.ChannelID] = append(agg.ChannelPostings[p.ChannelID], p)
		}
	}

	agg.UniqueChannels = len(agg.ChannelPostings)
	return agg
}

// SmallChannelSafety reports how many postings from small channels (at most
// 10k subscribers) have survived 6+ months. A single surviving old posting on
// a small channel is treated as a positive signal. Advisory only: it never
// feeds the numeric scores.
type SmallChannelSafety struct {
	ChannelCount  int     `json:"channel_count"`
	OldPostings   int     `json:"old_postings"`
	TotalPostings int     `json:"total_postings"`
	SafeRatio     float64 `json:"safe_ratio"`
	IsSafe        bool    `json:"is_safe"`
}

// smallChannelMaxSubscribers is the cutoff below which a channel counts as
// small for the survival check.
const smallChannelMaxSubscribers = 10000

// CheckSmallChannels evaluates posting survival on small channels given a
// subscriber count per channel id. Channels missing from subscribers are
// treated as having zero subscribers.
func CheckSmallChannels(channelPostings map[string][]Posting, subscribers map[string]int, now time.Time) SmallChannelSafety {
	var result SmallChannelSafety

	for channelID, postings := range channelPostings {
		if subscribers[channelID] > smallChannelMaxSubscribers {
			continue
		}
		result.ChannelCount++
		result.TotalPostings += len(postings)
		for _, p := range postings {
			if monthsBetween(p.PublishedAt, now) >= 6 {
				result.OldPostings++
			}
		}
	}

	if result.TotalPostings > 0 {
		result.SafeRatio = float64(result.OldPostings) / float64(result.TotalPostings)
	}
	result.IsSafe = result.OldPostings > 0
	return result
}

func monthsBetween(from, to time.Time) float64 {
	return float64(to.Sub(from)) / float64(monthDuration)
}
