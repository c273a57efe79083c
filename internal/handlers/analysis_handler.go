package handlers

import (
	"errors"

	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeTitle runs the shorts analysis pipeline for one title.
func (h *AnalysisHandler) AnalyzeTitle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	analysis, err := h.analysisService.Analyze(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		case errors.Is(err, services.ErrSearchNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Video platform search is not configured",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Analysis failed",
		})
	}

	return c.JSON(analysis)
}

// GetAnalysis returns the stored snapshot without triggering a new run.
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	analysis, err := h.analysisService.Latest(id)
	if err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load analysis",
		})
	}
	if analysis == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No analysis yet for this title",
		})
	}

	return c.JSON(analysis)
}

// AnalyzeAll re-analyzes every stale title in the catalog.
func (h *AnalysisHandler) AnalyzeAll(c *fiber.Ctx) error {
	result, err := h.analysisService.AnalyzeAll(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrSearchNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Video platform search is not configured",
			})
		}
		// Partial results are still worth returning on a cancelled batch.
		if result != nil {
			return c.Status(fiber.StatusOK).JSON(result)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Batch analysis failed",
		})
	}

	return c.JSON(result)
}
