// Package tmdb is a thin client for the metadata provider used to enrich
// catalog entries with posters, overviews and ratings.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrAPIKeyMissing = errors.New("tmdb api key is not configured")

const imageBaseURL = "https://image.tmdb.org/t/p/w500"

// TitleInfo is the subset of provider metadata the catalog stores.
type TitleInfo struct {
	TMDBID       int64
	Name         string
	OriginalName string
	Overview     string
	PosterURL    string
	Rating       float64
	ReleaseDate  *time.Time
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) IsConfigured() bool { return c.apiKey != "" }

type searchResponse struct {
	Results []struct {
		ID            int64   `json:"id"`
		Title         string  `json:"title"`
		Name          string  `json:"name"`
		OriginalTitle string  `json:"original_title"`
		OriginalName  string  `json:"original_name"`
		Overview      string  `json:"overview"`
		PosterPath    string  `json:"poster_path"`
		VoteAverage   float64 `json:"vote_average"`
		ReleaseDate   string  `json:"release_date"`
		FirstAirDate  string  `json:"first_air_date"`
	} `json:"results"`
}

// SearchTitle looks up a movie or TV title by name, Korean-language first.
// Returns nil when nothing matches.
func (c *Client) SearchTitle(ctx context.Context, name string, isTV bool) (*TitleInfo, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := "/search/movie"
	if isTV {
		endpoint = "/search/tv"
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", name)
	params.Set("language", "ko-KR")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	if len(sr.Results) == 0 {
		return nil, nil
	}

	r := sr.Results[0]
	info := &TitleInfo{
		TMDBID:       r.ID,
		Name:         firstNonEmpty(r.Title, r.Name),
		OriginalName: firstNonEmpty(r.OriginalTitle, r.OriginalName),
		Overview:     r.Overview,
		Rating:       r.VoteAverage,
	}
	if r.PosterPath != "" {
		info.PosterURL = imageBaseURL + r.PosterPath
	}
	if date := firstNonEmpty(r.ReleaseDate, r.FirstAirDate); date != "" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			info.ReleaseDate = &t
		}
	}
	return info, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
