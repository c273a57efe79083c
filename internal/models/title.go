package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Title types.
const (
	TitleTypeMovie = "movie"
	TitleTypeDrama = "drama"
)

// Title is one catalog entry (movie or drama). Community and automated
// verdicts are cached on the row; the report list itself lives in
// safety_reports and the cache is recomputed on every submission.
type Title struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type          string     `gorm:"size:20;not null;index" json:"type"`
	Name          string     `gorm:"size:255;not null;index" json:"name"`
	OriginalName  string     `gorm:"size:255" json:"original_name,omitempty"`
	Overview      string     `gorm:"type:text" json:"overview,omitempty"`
	PosterURL     string     `gorm:"size:500" json:"poster_url,omitempty"`
	TMDBID        *int64     `gorm:"index" json:"tmdb_id,omitempty"`
	ReleaseDate   *time.Time `gorm:"type:date" json:"release_date,omitempty"`
	Rating        float64    `gorm:"default:0" json:"rating"`
	AudienceCount int64      `gorm:"default:0" json:"audience_count"`

	// Admin flags. Recommended outranks verified in the trust order.
	AdminRecommended bool `gorm:"default:false;index" json:"admin_recommended"`
	VerifiedSafe     bool `gorm:"default:false" json:"is_verified_safe"`

	// Shorts production history used by the fit score.
	CopyrightWarning   bool       `gorm:"default:false" json:"copyright_warning"`
	ShortsFirstUpload  *time.Time `json:"shorts_first_upload,omitempty"`
	ShortsChannelCount int        `gorm:"default:0" json:"shorts_channel_count"`
	ShortsLastChecked  *time.Time `json:"shorts_last_checked,omitempty"`

	// Cached community summary, recomputed on every report.
	SafetyRatingAverage float64    `gorm:"default:0" json:"safety_rating_average"`
	SafetyRatingCount   int        `gorm:"default:0" json:"safety_rating_count"`
	SafetyConfidence    string     `gorm:"size:10" json:"safety_confidence,omitempty"`
	SafetyLevel         string     `gorm:"size:20" json:"safety_level,omitempty"`
	SafetyDeletionCount int        `gorm:"default:0" json:"safety_deletion_count"`
	SafetyLastUpdated   *time.Time `json:"safety_last_updated,omitempty"`

	// Latest automated analysis snapshot, overwritten on every run.
	AutoAnalysis   datatypes.JSON `gorm:"type:jsonb" json:"auto_analysis,omitempty"`
	AutoTotalScore float64        `gorm:"default:0" json:"auto_total_score"`

	Reports []SafetyReport `gorm:"foreignKey:TitleID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
