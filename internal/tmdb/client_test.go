package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTitleMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "ko-KR", r.URL.Query().Get("language"))
		assert.Equal(t, "기생충", r.URL.Query().Get("query"))

		fmt.Fprint(w, `{
			"results": [
				{
					"id": 496243,
					"title": "기생충",
					"original_title": "Parasite",
					"overview": "전원 백수로 살 길 막막하지만...",
					"poster_path": "/poster.jpg",
					"vote_average": 8.5,
					"release_date": "2019-05-30"
				}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 5*time.Second)
	info, err := client.SearchTitle(context.Background(), "기생충", false)
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, int64(496243), info.TMDBID)
	assert.Equal(t, "기생충", info.Name)
	assert.Equal(t, "Parasite", info.OriginalName)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", info.PosterURL)
	assert.Equal(t, 8.5, info.Rating)
	require.NotNil(t, info.ReleaseDate)
	assert.Equal(t, 2019, info.ReleaseDate.Year())
}

func TestSearchTitleTV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/tv", r.URL.Path)
		fmt.Fprint(w, `{
			"results": [
				{"id": 1, "name": "더 글로리", "original_name": "The Glory", "first_air_date": "2022-12-30"}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 5*time.Second)
	info, err := client.SearchTitle(context.Background(), "더 글로리", true)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "더 글로리", info.Name)
	require.NotNil(t, info.ReleaseDate)
	assert.Equal(t, 2022, info.ReleaseDate.Year())
}

func TestSearchTitleNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 5*time.Second)
	info, err := client.SearchTitle(context.Background(), "없는 작품", false)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestSearchTitleWithoutKey(t *testing.T) {
	client := NewClient("", "http://localhost", time.Second)
	_, err := client.SearchTitle(context.Background(), "anything", false)
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}
