package handlers

import (
	"errors"
	"strconv"

	"github.com/doyoonkang/shortscout/internal/config"
	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/middleware"
	"github.com/doyoonkang/shortscout/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
	cfg           *config.Config
}

func NewReportHandler(reportService *services.ReportService, cfg *config.Config) *ReportHandler {
	return &ReportHandler{reportService: reportService, cfg: cfg}
}

func (h *ReportHandler) SubmitReport(c *fiber.Ctx) error {
	titleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	isAdmin := middleware.IsAdminUser(c, h.cfg)
	report, summary, err := h.reportService.Submit(titleID, userID, &req, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		case errors.Is(err, services.ErrIncompleteReport),
			errors.Is(err, services.ErrMonthsBucket),
			errors.Is(err, services.ErrCommentRejected):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report":  report,
		"summary": summary,
	})
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	titleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	reports, err := h.reportService.Recent(titleID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list reports",
		})
	}

	return c.JSON(fiber.Map{"reports": reports})
}

// RecomputeSummary forces a recompute of a title's cached community summary.
func (h *ReportHandler) RecomputeSummary(c *fiber.Ctx) error {
	titleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	summary, err := h.reportService.Recompute(titleID)
	if err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to recompute summary",
		})
	}

	return c.JSON(summary)
}
