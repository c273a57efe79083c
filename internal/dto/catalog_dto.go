package dto

type CreateTitleRequest struct {
	Type          string  `json:"type"`
	Name          string  `json:"name"`
	OriginalName  string  `json:"original_name"`
	Overview      string  `json:"overview"`
	PosterURL     string  `json:"poster_url"`
	TMDBID        *int64  `json:"tmdb_id"`
	ReleaseDate   string  `json:"release_date"` // YYYY-MM-DD
	Rating        float64 `json:"rating"`
	AudienceCount int64   `json:"audience_count"`
	// Lookup fills empty metadata fields from the metadata provider.
	Lookup bool `json:"lookup"`
}

type UpdateTitleRequest struct {
	Overview      *string  `json:"overview"`
	PosterURL     *string  `json:"poster_url"`
	Rating        *float64 `json:"rating"`
	AudienceCount *int64   `json:"audience_count"`
}

type ListTitlesQuery struct {
	Type   string `query:"type"`
	Search string `query:"search"`
	Safe   bool   `query:"safe"`
	Sort   string `query:"sort"` // safety | fit | recent
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
