package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doyoonkang/shortscout/internal/models"
	"github.com/doyoonkang/shortscout/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrChannelExists   = errors.New("channel is already registered")
	ErrChannelNotFound = errors.New("channel not found")
	ErrInvalidRisk     = errors.New("risk_level must be forbidden or warning")
)

// ChannelService manages the excluded-channel registry and exposes read-only
// snapshots to the scoring engine.
type ChannelService struct {
	db *gorm.DB
}

func NewChannelService(db *gorm.DB) *ChannelService {
	return &ChannelService{db: db}
}

func (s *ChannelService) List() ([]models.ExcludedChannel, error) {
	var channels []models.ExcludedChannel
	err := s.db.Order("created_at DESC").Find(&channels).Error
	return channels, err
}

// Add registers a channel in exactly one risk tier. Re-registering an
// existing channel id is rejected; use Remove first to change tiers.
func (s *ChannelService) Add(channelID, channelName, channelURL, riskLevel, reason, addedBy string) (*models.ExcludedChannel, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, errors.New("channel_id is required")
	}
	if riskLevel != models.RiskForbidden && riskLevel != models.RiskWarning {
		return nil, ErrInvalidRisk
	}

	var existing models.ExcludedChannel
	if err := s.db.Where("channel_id = ?", channelID).First(&existing).Error; err == nil {
		return nil, ErrChannelExists
	}

	channel := models.ExcludedChannel{
		ID:          uuid.New(),
		ChannelID:   channelID,
		ChannelName: channelName,
		ChannelURL:  channelURL,
		RiskLevel:   riskLevel,
		Reason:      reason,
		AddedBy:     addedBy,
	}
	if err := s.db.Create(&channel).Error; err != nil {
		return nil, fmt.Errorf("failed to register channel: %w", err)
	}
	return &channel, nil
}

func (s *ChannelService) Remove(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.ExcludedChannel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChannelNotFound
	}
	return nil
}

// Snapshot materializes the registry for one analysis run. The engine never
// reads the registry directly; it gets this immutable view injected.
func (s *ChannelService) Snapshot() (scoring.Registry, error) {
	var channels []models.ExcludedChannel
	if err := s.db.Find(&channels).Error; err != nil {
		return scoring.Registry{}, fmt.Errorf("failed to load channel registry: %w", err)
	}

	registry := scoring.EmptyRegistry()
	for _, ch := range channels {
		info := scoring.ChannelInfo{
			ChannelID:   ch.ChannelID,
			ChannelName: ch.ChannelName,
			Reason:      ch.Reason,
		}
		if ch.RiskLevel == models.RiskForbidden {
			registry.Forbidden[ch.ChannelID] = info
		} else {
			registry.Warning[ch.ChannelID] = info
		}
	}
	return registry, nil
}

// ExtractChannelID pulls a channel id out of a pasted channel URL. Accepts
// /channel/<id> URLs and bare UC... ids; @handles cannot be resolved without
// an API call and are rejected.
func ExtractChannelID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("channel url or id is required")
	}

	if idx := strings.Index(input, "/channel/"); idx >= 0 {
		id := input[idx+len("/channel/"):]
		if cut := strings.IndexAny(id, "/?&"); cut >= 0 {
			id = id[:cut]
		}
		if id != "" {
			return id, nil
		}
	}

	if strings.HasPrefix(input, "UC") && !strings.Contains(input, "/") {
		return input, nil
	}
	return "", errors.New("could not extract channel id; paste a /channel/ URL or a UC... id")
}
