package routes

import (
	"time"

	"github.com/doyoonkang/shortscout/internal/config"
	"github.com/doyoonkang/shortscout/internal/handlers"
	"github.com/doyoonkang/shortscout/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	reportHandler *handlers.ReportHandler,
	analysisHandler *handlers.AnalysisHandler,
	channelHandler *handlers.ChannelHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", userHandler.Register)
	auth.Post("/login", userHandler.Login)
	api.Get("/auth/me", middleware.JWTProtected(cfg), userHandler.Me)

	// Catalog — public reads
	api.Get("/titles", catalogHandler.ListTitles)
	api.Get("/titles/:id", catalogHandler.GetTitle)
	api.Get("/titles/:id/grade", catalogHandler.GetGrade)
	api.Get("/titles/:id/analysis", analysisHandler.GetAnalysis)
	api.Get("/titles/:id/reports", reportHandler.ListReports)
	api.Get("/channels", channelHandler.ListChannels)

	// Community reports (protected)
	api.Post("/titles/:id/reports", middleware.JWTProtected(cfg), reportHandler.SubmitReport)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/titles", catalogHandler.CreateTitle)
	admin.Put("/titles/:id", catalogHandler.UpdateTitle)
	admin.Delete("/titles/:id", catalogHandler.DeleteTitle)
	admin.Put("/titles/:id/recommended", catalogHandler.SetRecommended)
	admin.Put("/titles/:id/verified", catalogHandler.SetVerified)
	admin.Post("/titles/:id/recompute", reportHandler.RecomputeSummary)

	// Platform analysis is admin-only: each run spends search API quota
	admin.Post("/titles/:id/analyze", analysisHandler.AnalyzeTitle)
	admin.Post("/analyze-all", analysisHandler.AnalyzeAll)

	admin.Post("/channels", channelHandler.AddChannel)
	admin.Delete("/channels/:id", channelHandler.RemoveChannel)

	admin.Get("/users", userHandler.ListUsers)
	admin.Put("/users/:id/status", userHandler.SetStatus)
	admin.Put("/users/:id/role", userHandler.SetRole)

	admin.Get("/stats", catalogHandler.Stats)
}
