// Package youtube wraps the YouTube Data API v3 search endpoint used to
// discover existing shorts for a title. The client returns fully-materialized
// batches; all scoring happens downstream on the snapshot it produces.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/doyoonkang/shortscout/internal/models"
	"github.com/doyoonkang/shortscout/internal/scoring"
)

var ErrAPIKeyMissing = errors.New("youtube api key is not configured")

// SearchResult is one search snapshot. TotalCount is the platform-reported
// estimate and may exceed the sampled page (max 50 items per call). An empty
// Postings slice with Queried true is a real "no videos found" observation,
// distinct from "not yet queried".
type SearchResult struct {
	Query      string
	TotalCount int
	Postings   []scoring.Posting
	Queried    bool
}

type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string, maxResults int, timeout time.Duration) *Client {
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 50
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) IsConfigured() bool { return c.apiKey != "" }

// BuildQuery produces the hashtag search query for a title, matching how
// shorts creators tag their uploads.
func BuildQuery(titleType, name string) string {
	prefix := "영화"
	if titleType == models.TitleTypeDrama {
		prefix = "드라마"
	}
	return fmt.Sprintf("#%s #%s shorts", prefix, name)
}

type searchResponse struct {
	PageInfo struct {
		TotalResults int `json:"totalResults"`
	} `json:"pageInfo"`
	Items []struct {
		Snippet struct {
			ChannelID    string    `json:"channelId"`
			ChannelTitle string    `json:"channelTitle"`
			PublishedAt  time.Time `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search runs a short-video search for the query. Only failures of the
// upstream call return an error; zero results are a valid observation.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoDuration", "short")
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("key", c.apiKey)

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	result := &SearchResult{
		Query:      query,
		TotalCount: resp.PageInfo.TotalResults,
		Queried:    true,
	}
	for _, item := range resp.Items {
		result.Postings = append(result.Postings, scoring.Posting{
			ChannelID:   item.Snippet.ChannelID,
			ChannelName: item.Snippet.ChannelTitle,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	if result.TotalCount < len(result.Postings) {
		result.TotalCount = len(result.Postings)
	}
	return result, nil
}

type channelsResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// SubscriberCounts fetches subscriber counts for the given channel ids,
// batching at the API's 50-id limit. Failed batches are skipped: the counts
// feed an advisory check, not the score.
func (c *Client) SubscriberCounts(ctx context.Context, channelIDs []string) (map[string]int, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	counts := make(map[string]int, len(channelIDs))
	const batchSize = 50

	for start := 0; start < len(channelIDs); start += batchSize {
		end := start + batchSize
		if end > len(channelIDs) {
			end = len(channelIDs)
		}

		params := url.Values{}
		params.Set("part", "statistics")
		params.Set("id", strings.Join(channelIDs[start:end], ","))
		params.Set("key", c.apiKey)

		var resp channelsResponse
		if err := c.getJSON(ctx, c.baseURL+"/channels?"+params.Encode(), &resp); err != nil {
			continue
		}
		for _, item := range resp.Items {
			if n, err := strconv.Atoi(item.Statistics.SubscriberCount); err == nil {
				counts[item.ID] = n
			}
		}
	}
	return counts, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
