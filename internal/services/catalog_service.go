package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/models"
	"github.com/doyoonkang/shortscout/internal/scoring"
	"github.com/doyoonkang/shortscout/internal/tmdb"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService owns the title catalog: CRUD, search, admin flags and
// grade resolution. All scoring math stays in the scoring package; this
// service only assembles its inputs from persisted state.
type CatalogService struct {
	db       *gorm.DB
	metadata *tmdb.Client
}

func NewCatalogService(db *gorm.DB, metadata *tmdb.Client) *CatalogService {
	return &CatalogService{db: db, metadata: metadata}
}

// TitleView is a catalog entry with its resolved verdicts attached.
type TitleView struct {
	models.Title
	Grade    scoring.GradeBadge   `json:"grade"`
	FitScore int                  `json:"fit_score"`
	Hybrid   *scoring.HybridScore `json:"hybrid,omitempty"`
}

func (s *CatalogService) Create(ctx context.Context, req *dto.CreateTitleRequest) (*models.Title, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Type != models.TitleTypeMovie && req.Type != models.TitleTypeDrama {
		return nil, errors.New("type must be movie or drama")
	}

	title := models.Title{
		ID:            uuid.New(),
		Type:          req.Type,
		Name:          req.Name,
		OriginalName:  req.OriginalName,
		Overview:      req.Overview,
		PosterURL:     req.PosterURL,
		TMDBID:        req.TMDBID,
		Rating:        req.Rating,
		AudienceCount: req.AudienceCount,
	}
	if req.ReleaseDate != "" {
		t, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return nil, errors.New("release_date must be YYYY-MM-DD")
		}
		title.ReleaseDate = &t
	}

	if req.Lookup && s.metadata != nil && s.metadata.IsConfigured() {
		s.enrichFromMetadata(ctx, &title)
	}

	if err := s.db.Create(&title).Error; err != nil {
		return nil, fmt.Errorf("failed to create title: %w", err)
	}
	return &title, nil
}

// enrichFromMetadata fills empty fields from the metadata provider. Lookup
// failures are not fatal: the catalog entry is still created.
func (s *CatalogService) enrichFromMetadata(ctx context.Context, title *models.Title) {
	info, err := s.metadata.SearchTitle(ctx, title.Name, title.Type == models.TitleTypeDrama)
	if err != nil || info == nil {
		return
	}
	if title.TMDBID == nil {
		title.TMDBID = &info.TMDBID
	}
	if title.OriginalName == "" {
		title.OriginalName = info.OriginalName
	}
	if title.Overview == "" {
		title.Overview = info.Overview
	}
	if title.PosterURL == "" {
		title.PosterURL = info.PosterURL
	}
	if title.Rating == 0 {
		title.Rating = info.Rating
	}
	if title.ReleaseDate == nil {
		title.ReleaseDate = info.ReleaseDate
	}
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Title, error) {
	var title models.Title
	if err := s.db.First(&title, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	return &title, nil
}

func (s *CatalogService) Update(id uuid.UUID, req *dto.UpdateTitleRequest) (*models.Title, error) {
	title, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Overview != nil {
		updates["overview"] = *req.Overview
	}
	if req.PosterURL != nil {
		updates["poster_url"] = *req.PosterURL
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.AudienceCount != nil {
		updates["audience_count"] = *req.AudienceCount
	}
	if len(updates) == 0 {
		return title, nil
	}

	if err := s.db.Model(title).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update title: %w", err)
	}
	return title, nil
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Title{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTitleNotFound
	}
	return nil
}

// SetAdminRecommended toggles the top-precedence admin flag.
func (s *CatalogService) SetAdminRecommended(id uuid.UUID, recommended bool) error {
	return s.setFlag(id, "admin_recommended", recommended)
}

// SetVerifiedSafe toggles the second-precedence admin flag.
func (s *CatalogService) SetVerifiedSafe(id uuid.UUID, verified bool) error {
	return s.setFlag(id, "verified_safe", verified)
}

func (s *CatalogService) setFlag(id uuid.UUID, column string, value bool) error {
	result := s.db.Model(&models.Title{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTitleNotFound
	}
	return nil
}

// List returns catalog entries with resolved grades. safe narrows to titles
// with a trusted community average of 6+, sort orders the full filtered set
// by community safety, production fit or recency before paginating.
func (s *CatalogService) List(q *dto.ListTitlesQuery) ([]TitleView, int64, error) {
	query := s.db.Model(&models.Title{})
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR original_name ILIKE ?", pattern, pattern)
	}
	if q.Safe {
		query = query.Where("safety_rating_count >= ? AND safety_rating_average >= ?", 3, 6.0)
	}

	var total int64
	query.Count(&total)

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	var titles []models.Title

	// The fit score is derived, not stored, so a global fit ordering has to
	// rank the whole filtered set before slicing out the requested page.
	if q.Sort == "fit" {
		if err := query.Order("created_at DESC").Find(&titles).Error; err != nil {
			return nil, 0, err
		}
		views := s.buildViews(titles)
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].FitScore > views[j].FitScore
		})
		return pageOf(views, offset, limit), total, nil
	}

	order := "created_at DESC"
	if q.Sort == "safety" {
		order = "safety_rating_average DESC, safety_rating_count DESC"
	}
	if err := query.Order(order).Limit(limit).Offset(offset).Find(&titles).Error; err != nil {
		return nil, 0, err
	}
	return s.buildViews(titles), total, nil
}

func (s *CatalogService) buildViews(titles []models.Title) []TitleView {
	views := make([]TitleView, len(titles))
	for i, t := range titles {
		views[i] = s.buildView(t)
	}
	return views
}

// pageOf slices one page out of an already ordered view list.
func pageOf(views []TitleView, offset, limit int) []TitleView {
	if offset >= len(views) {
		return []TitleView{}
	}
	end := offset + limit
	if end > len(views) {
		end = len(views)
	}
	return views[offset:end]
}

// View assembles the full verdict view for one title.
func (s *CatalogService) View(id uuid.UUID) (*TitleView, error) {
	title, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	view := s.buildView(*title)
	return &view, nil
}

// Grade resolves just the renderable grade badge for a title.
func (s *CatalogService) Grade(id uuid.UUID) (*scoring.GradeBadge, error) {
	title, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	badge := resolveGrade(*title)
	return &badge, nil
}

func (s *CatalogService) buildView(title models.Title) TitleView {
	now := time.Now()
	view := TitleView{
		Title:    title,
		Grade:    resolveGrade(title),
		FitScore: scoring.FitScore(fitInput(title), now),
	}

	var analysis *scoring.Analysis
	if len(title.AutoAnalysis) > 0 {
		var a scoring.Analysis
		if err := json.Unmarshal(title.AutoAnalysis, &a); err == nil {
			analysis = &a
		}
	}
	var summary *scoring.Summary
	if title.SafetyRatingCount > 0 {
		summary = &scoring.Summary{
			Score:         title.SafetyRatingAverage,
			Count:         title.SafetyRatingCount,
			Confidence:    title.SafetyConfidence,
			DeletionCount: title.SafetyDeletionCount,
			SafetyLevel:   title.SafetyLevel,
		}
	}
	view.Hybrid = scoring.CombineHybrid(analysis, summary)
	return view
}

func resolveGrade(title models.Title) scoring.GradeBadge {
	return scoring.ResolveGrade(scoring.TitleSignals{
		AdminRecommended: title.AdminRecommended,
		AdminVerified:    title.VerifiedSafe,
		CommunityScore:   title.SafetyRatingAverage,
		CommunityCount:   title.SafetyRatingCount,
		AutoScore:        title.AutoTotalScore,
	})
}

func fitInput(title models.Title) scoring.FitInput {
	return scoring.FitInput{
		AudienceCount:    title.AudienceCount,
		Rating:           title.Rating,
		FirstUploadAt:    title.ShortsFirstUpload,
		CopyrightWarning: title.CopyrightWarning,
		ChannelCount:     title.ShortsChannelCount,
		VerifiedSafe:     title.VerifiedSafe,
		ReleaseDate:      title.ReleaseDate,
	}
}

// Stats summarizes the catalog for the admin dashboard.
func (s *CatalogService) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var movieCount, dramaCount, channelCount, reportCount int64
	s.db.Model(&models.Title{}).Where("type = ?", models.TitleTypeMovie).Count(&movieCount)
	s.db.Model(&models.Title{}).Where("type = ?", models.TitleTypeDrama).Count(&dramaCount)
	s.db.Model(&models.ExcludedChannel{}).Count(&channelCount)
	s.db.Model(&models.SafetyReport{}).Count(&reportCount)

	stats["movies"] = movieCount
	stats["dramas"] = dramaCount
	stats["excluded_channels"] = channelCount
	stats["safety_reports"] = reportCount

	var recommended int64
	s.db.Model(&models.Title{}).Where("admin_recommended = ?", true).Count(&recommended)
	stats["admin_recommended"] = recommended

	return stats, nil
}
