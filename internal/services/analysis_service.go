package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/doyoonkang/shortscout/internal/models"
	"github.com/doyoonkang/shortscout/internal/scoring"
	"github.com/doyoonkang/shortscout/internal/youtube"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSearchNotConfigured = errors.New("video platform search is not configured")

// AnalysisService runs the automated shorts analysis pipeline: search the
// platform for a title's shorts, collect the postings against the excluded
// channel registry, score them and persist the snapshot on the title row.
type AnalysisService struct {
	db       *gorm.DB
	search   *youtube.Client
	channels *ChannelService

	// batchDelay spaces out platform calls during batch runs; staleness
	// is how recent a snapshot must be to be skipped by AnalyzeAll.
	batchDelay time.Duration
	staleness  time.Duration
}

func NewAnalysisService(db *gorm.DB, search *youtube.Client, channels *ChannelService, batchDelay, staleness time.Duration) *AnalysisService {
	return &AnalysisService{
		db:         db,
		search:     search,
		channels:   channels,
		batchDelay: batchDelay,
		staleness:  staleness,
	}
}

// Analyze runs the full pipeline for one title and persists the result.
func (s *AnalysisService) Analyze(ctx context.Context, titleID uuid.UUID) (*scoring.Analysis, error) {
	if !s.search.IsConfigured() {
		return nil, ErrSearchNotConfigured
	}

	var title models.Title
	if err := s.db.First(&title, "id = ?", titleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}

	analysis, err := s.run(ctx, &title)
	if err != nil {
		return nil, err
	}
	if err := s.persist(&title, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (s *AnalysisService) run(ctx context.Context, title *models.Title) (*scoring.Analysis, error) {
	query := youtube.BuildQuery(title.Type, title.Name)

	result, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("shorts search failed: %w", err)
	}

	registry, err := s.channels.Snapshot()
	if err != nil {
		slog.Warn("channel registry unavailable, scoring without it", "error", err)
		registry = scoring.EmptyRegistry()
	}

	now := time.Now()
	agg := scoring.Collect(result.Postings, registry, now)
	analysis := scoring.Analyze(agg, result.TotalCount, now)
	analysis.SearchQuery = query

	if agg.UniqueChannels > 0 {
		s.attachSmallChannels(ctx, &analysis, agg, now)
	}
	return &analysis, nil
}

// attachSmallChannels adds the advisory small-channel survival check. The
// extra subscriber lookup is best-effort: a failure leaves the advisory off
// without failing the analysis.
func (s *AnalysisService) attachSmallChannels(ctx context.Context, analysis *scoring.Analysis, agg scoring.Aggregate, now time.Time) {
	ids := make([]string, 0, len(agg.ChannelPostings))
	for id := range agg.ChannelPostings {
		ids = append(ids, id)
	}

	subscribers, err := s.search.SubscriberCounts(ctx, ids)
	if err != nil {
		slog.Warn("subscriber lookup failed, skipping small channel check", "error", err)
		return
	}

	check := scoring.CheckSmallChannels(agg.ChannelPostings, subscribers, now)
	analysis.SmallChannels = &check
}

func (s *AnalysisService) persist(title *models.Title, analysis *scoring.Analysis) error {
	snapshot, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	now := analysis.AnalyzedAt
	updates := map[string]interface{}{
		"auto_analysis":        datatypes.JSON(snapshot),
		"auto_total_score":     analysis.TotalScore,
		"shorts_last_checked":  now,
		"shorts_channel_count": analysis.UniqueChannels,
	}
	if analysis.EarliestPublish != nil {
		updates["shorts_first_upload"] = *analysis.EarliestPublish
	}

	if err := s.db.Model(title).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to store analysis: %w", err)
	}
	return nil
}

// Latest returns the stored snapshot for a title, nil when none exists yet.
func (s *AnalysisService) Latest(titleID uuid.UUID) (*scoring.Analysis, error) {
	var title models.Title
	if err := s.db.Select("auto_analysis").First(&title, "id = ?", titleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	if len(title.AutoAnalysis) == 0 {
		return nil, nil
	}

	var analysis scoring.Analysis
	if err := json.Unmarshal(title.AutoAnalysis, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode stored analysis: %w", err)
	}
	return &analysis, nil
}

// BatchResult summarizes one AnalyzeAll run.
type BatchResult struct {
	Total    int `json:"total"`
	Analyzed int `json:"analyzed"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// AnalyzeAll re-analyzes every title whose snapshot is older than the
// staleness window, pacing calls with the batch delay. One title failing
// does not stop the batch; a cancelled context does.
func (s *AnalysisService) AnalyzeAll(ctx context.Context) (*BatchResult, error) {
	if !s.search.IsConfigured() {
		return nil, ErrSearchNotConfigured
	}

	var titles []models.Title
	if err := s.db.Order("shorts_last_checked ASC NULLS FIRST").Find(&titles).Error; err != nil {
		return nil, err
	}

	result := &BatchResult{Total: len(titles)}
	cutoff := time.Now().Add(-s.staleness)

	for i, title := range titles {
		if title.ShortsLastChecked != nil && title.ShortsLastChecked.After(cutoff) {
			result.Skipped++
			continue
		}

		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.batchDelay):
			}
		}

		analysis, err := s.run(ctx, &title)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, err
			}
			slog.Error("title analysis failed", "title_id", title.ID, "name", title.Name, "error", err)
			result.Failed++
			continue
		}
		if err := s.persist(&title, analysis); err != nil {
			slog.Error("failed to persist analysis", "title_id", title.ID, "error", err)
			result.Failed++
			continue
		}
		result.Analyzed++
	}

	slog.Info("batch analysis finished",
		"total", result.Total,
		"analyzed", result.Analyzed,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return result, nil
}
