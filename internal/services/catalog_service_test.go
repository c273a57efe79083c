package services

import (
	"path/filepath"
	"testing"

	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a throwaway sqlite database with the production schema.
// Tables are created by hand because the model DDL carries Postgres-only
// defaults (gen_random_uuid).
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "shortscout.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE titles (
			id TEXT PRIMARY KEY,
			type TEXT,
			name TEXT,
			original_name TEXT,
			overview TEXT,
			poster_url TEXT,
			tmdb_id INTEGER,
			release_date DATETIME,
			rating REAL,
			audience_count INTEGER,
			admin_recommended NUMERIC,
			verified_safe NUMERIC,
			copyright_warning NUMERIC,
			shorts_first_upload DATETIME,
			shorts_channel_count INTEGER,
			shorts_last_checked DATETIME,
			safety_rating_average REAL,
			safety_rating_count INTEGER,
			safety_confidence TEXT,
			safety_level TEXT,
			safety_deletion_count INTEGER,
			safety_last_updated DATETIME,
			auto_analysis TEXT,
			auto_total_score REAL,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE safety_reports (
			id TEXT PRIMARY KEY,
			title_id TEXT,
			user_id TEXT,
			shorts_created NUMERIC,
			copyright_issue NUMERIC,
			shorts_deleted NUMERIC,
			months_since_upload INTEGER,
			comment TEXT,
			is_admin_rating NUMERIC,
			forced_score INTEGER,
			created_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedTitle(t *testing.T, db *gorm.DB, name string, mutate func(*models.Title)) models.Title {
	t.Helper()

	title := models.Title{
		ID:   uuid.New(),
		Type: models.TitleTypeMovie,
		Name: name,
	}
	if mutate != nil {
		mutate(&title)
	}
	require.NoError(t, db.Create(&title).Error)
	return title
}

func listNames(views []TitleView) []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	return names
}

// Safety ordering must hold across page boundaries: page 2 starts where
// page 1 ended in the global ranking, not in a per-page re-sort.
func TestListSafetySortSpansPages(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db, nil)

	for name, avg := range map[string]float64{
		"floor": 1.0,
		"low":   2.0,
		"mid":   5.5,
		"high":  9.0,
		"top":   9.5,
	} {
		seedTitle(t, db, name, func(m *models.Title) {
			m.SafetyRatingAverage = avg
			m.SafetyRatingCount = 5
		})
	}

	first, total, err := svc.List(&dto.ListTitlesQuery{Sort: "safety", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []string{"top", "high"}, listNames(first))

	second, _, err := svc.List(&dto.ListTitlesQuery{Sort: "safety", Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"mid", "low"}, listNames(second))

	third, _, err := svc.List(&dto.ListTitlesQuery{Sort: "safety", Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"floor"}, listNames(third))
}

func TestListSafetySortCountBreaksTies(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db, nil)

	seedTitle(t, db, "thin", func(m *models.Title) {
		m.SafetyRatingAverage = 8.0
		m.SafetyRatingCount = 2
	})
	seedTitle(t, db, "deep", func(m *models.Title) {
		m.SafetyRatingAverage = 8.0
		m.SafetyRatingCount = 20
	})

	views, _, err := svc.List(&dto.ListTitlesQuery{Sort: "safety", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"deep"}, listNames(views))
}

// Fit ordering is computed from row attributes rather than stored, so the
// page slice has to come from a ranking of the whole filtered set. The
// best-fit title is seeded first, which makes it the last one a recency
// ordering would surface.
func TestListFitSortSpansPages(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db, nil)

	seedTitle(t, db, "mega", func(m *models.Title) {
		m.AudienceCount = 10000000
		m.VerifiedSafe = true
	})
	seedTitle(t, db, "big", func(m *models.Title) {
		m.AudienceCount = 10000000
	})
	seedTitle(t, db, "mid", func(m *models.Title) {
		m.AudienceCount = 1000000
	})
	seedTitle(t, db, "small", nil)

	first, total, err := svc.List(&dto.ListTitlesQuery{Sort: "fit", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []string{"mega", "big"}, listNames(first))

	second, _, err := svc.List(&dto.ListTitlesQuery{Sort: "fit", Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"mid", "small"}, listNames(second))

	empty, _, err := svc.List(&dto.ListTitlesQuery{Sort: "fit", Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPageOf(t *testing.T) {
	views := []TitleView{
		{Title: models.Title{Name: "a"}},
		{Title: models.Title{Name: "b"}},
		{Title: models.Title{Name: "c"}},
	}

	assert.Equal(t, []string{"a", "b"}, listNames(pageOf(views, 0, 2)))
	assert.Equal(t, []string{"c"}, listNames(pageOf(views, 2, 2)))
	assert.Empty(t, pageOf(views, 3, 2))
	assert.Empty(t, pageOf(views, 10, 2))
}
