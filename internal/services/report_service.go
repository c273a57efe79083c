package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/models"
	"github.com/doyoonkang/shortscout/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleNotFound    = errors.New("title not found")
	ErrIncompleteReport = errors.New("copyright_issue, shorts_deleted and months_since_upload are required when a short was produced")
	ErrCommentRejected  = errors.New("comment rejected by content filter")
	ErrMonthsBucket     = errors.New("months_since_upload must be one of 0, 1, 3, 6, 12")
)

var validMonthsBuckets = map[int]bool{0: true, 1: true, 3: true, 6: true, 12: true}

// ReportService accepts community safety reports and keeps each title's
// cached community summary in sync with its append-only report list.
type ReportService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewReportService(db *gorm.DB, moderation *ModerationService) *ReportService {
	return &ReportService{db: db, moderation: moderation}
}

// Submit validates and stores one report, then recomputes the title's
// community summary from the full list. isAdmin marks the report as an
// administrator verdict, which forces the aggregate to 10.
func (s *ReportService) Submit(titleID, userID uuid.UUID, req *dto.SubmitReportRequest, isAdmin bool) (*models.SafetyReport, *scoring.Summary, error) {
	if req.ShortsCreated == nil {
		return nil, nil, errors.New("shorts_created is required")
	}

	report := models.SafetyReport{
		ID:            uuid.New(),
		TitleID:       titleID,
		UserID:        userID,
		ShortsCreated: *req.ShortsCreated,
		Comment:       req.Comment,
		IsAdminRating: isAdmin,
	}
	if isAdmin {
		forced := 10
		report.ForcedScore = &forced
	}

	if *req.ShortsCreated {
		if req.CopyrightIssue == nil || req.ShortsDeleted == nil || req.MonthsSinceUpload == nil {
			return nil, nil, ErrIncompleteReport
		}
		if !validMonthsBuckets[*req.MonthsSinceUpload] {
			return nil, nil, ErrMonthsBucket
		}
		report.CopyrightIssue = *req.CopyrightIssue
		report.ShortsDeleted = *req.ShortsDeleted
		report.MonthsSinceUpload = *req.MonthsSinceUpload
	}

	if s.moderation != nil {
		if clean, reason := s.moderation.FilterContent(req.Comment); !clean {
			return nil, nil, fmt.Errorf("%w: %s", ErrCommentRejected, s.moderation.GetRejectionMessage(reason))
		}
	}

	var title models.Title
	if err := s.db.First(&title, "id = ?", titleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTitleNotFound
		}
		return nil, nil, err
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to store report: %w", err)
	}

	summary, err := s.Recompute(titleID)
	if err != nil {
		return nil, nil, err
	}
	return &report, summary, nil
}

// Recompute rebuilds the cached community summary for a title from its full
// report list. Last writer wins on the cache row; the report list itself is
// append-only so the cache always converges.
func (s *ReportService) Recompute(titleID uuid.UUID) (*scoring.Summary, error) {
	reports, err := s.List(titleID)
	if err != nil {
		return nil, err
	}

	summary := scoring.Summarize(toEngineReports(reports), time.Now())

	now := time.Now()
	updates := map[string]interface{}{
		"safety_rating_average": summary.Score,
		"safety_rating_count":   summary.Count,
		"safety_confidence":     summary.Confidence,
		"safety_level":          summary.SafetyLevel,
		"safety_deletion_count": summary.DeletionCount,
		"safety_last_updated":   now,
	}
	result := s.db.Model(&models.Title{}).Where("id = ?", titleID).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to persist community summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrTitleNotFound
	}
	return &summary, nil
}

// List returns all reports for a title, newest first.
func (s *ReportService) List(titleID uuid.UUID) ([]models.SafetyReport, error) {
	var reports []models.SafetyReport
	err := s.db.Where("title_id = ?", titleID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

// Recent returns the newest scorable reports with their individual scores,
// for the detail view.
type ScoredReport struct {
	models.SafetyReport
	Score int `json:"score"`
}

func (s *ReportService) Recent(titleID uuid.UUID, limit int) ([]ScoredReport, error) {
	if limit <= 0 || limit > 50 {
		limit = 3
	}

	var reports []models.SafetyReport
	err := s.db.Where("title_id = ? AND shorts_created = ?", titleID, true).
		Order("created_at DESC").Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredReport, 0, len(reports))
	for _, r := range reports {
		score, ok := scoring.ReportScore(toEngineReport(r))
		if !ok {
			continue
		}
		scored = append(scored, ScoredReport{SafetyReport: r, Score: score})
	}
	return scored, nil
}

func toEngineReports(reports []models.SafetyReport) []scoring.Report {
	out := make([]scoring.Report, len(reports))
	for i, r := range reports {
		out[i] = toEngineReport(r)
	}
	return out
}

func toEngineReport(r models.SafetyReport) scoring.Report {
	return scoring.Report{
		ShortsCreated:     r.ShortsCreated,
		CopyrightIssue:    r.CopyrightIssue,
		ShortsDeleted:     r.ShortsDeleted,
		MonthsSinceUpload: r.MonthsSinceUpload,
		Comment:           r.Comment,
		IsAdminRating:     r.IsAdminRating,
		SubmittedAt:       r.CreatedAt,
	}
}
