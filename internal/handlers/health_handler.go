package handlers

import (
	"time"

	"github.com/doyoonkang/shortscout/internal/database"
	"github.com/doyoonkang/shortscout/internal/youtube"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	search *youtube.Client
}

func NewHealthHandler(search *youtube.Client) *HealthHandler {
	return &HealthHandler{search: search}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	searchStatus := "configured"
	if !h.search.IsConfigured() {
		searchStatus = "not configured"
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"db":        dbStatus,
		"search":    searchStatus,
	})
}
