package models

import (
	"time"

	"github.com/google/uuid"
)

// SafetyReport is one community member's self-reported production outcome
// for a title. Immutable once created; the list is append-only.
type SafetyReport struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TitleID uuid.UUID `gorm:"type:uuid;not null;index" json:"title_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	// ShortsCreated false means "not yet attempted" and the report counts
	// for nothing in the aggregate.
	ShortsCreated     bool   `gorm:"not null" json:"shorts_created"`
	CopyrightIssue    bool   `gorm:"default:false" json:"copyright_issue"`
	ShortsDeleted     bool   `gorm:"default:false" json:"shorts_deleted"`
	MonthsSinceUpload int    `gorm:"default:0" json:"months_since_upload"`
	Comment           string `gorm:"type:text" json:"comment,omitempty"`

	IsAdminRating bool `gorm:"default:false" json:"is_admin_rating"`
	// ForcedScore is 10 for admin reports, unset otherwise.
	ForcedScore *int `json:"forced_score,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
