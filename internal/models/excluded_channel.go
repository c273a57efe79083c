package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Channel risk tiers.
const (
	RiskForbidden = "forbidden"
	RiskWarning   = "warning"
)

// ExcludedChannel is one registry entry for a video-platform channel that
// must not (forbidden) or should cautiously (warning) be used as shorts
// source. A channel id appears in at most one tier at a time.
type ExcludedChannel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChannelID   string         `gorm:"size:100;not null;uniqueIndex" json:"channel_id"`
	ChannelName string         `gorm:"size:255;not null" json:"channel_name"`
	ChannelURL  string         `gorm:"size:500" json:"channel_url,omitempty"`
	RiskLevel   string         `gorm:"size:20;not null;index" json:"risk_level"`
	Reason      string         `gorm:"type:text" json:"reason,omitempty"`
	AddedBy     string         `gorm:"size:255" json:"added_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
