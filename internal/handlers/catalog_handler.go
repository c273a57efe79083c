package handlers

import (
	"errors"

	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListTitles(c *fiber.Ctx) error {
	var q dto.ListTitlesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid query parameters",
		})
	}

	titles, total, err := h.catalogService.List(&q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list titles",
		})
	}

	return c.JSON(fiber.Map{
		"titles": titles,
		"total":  total,
	})
}

func (h *CatalogHandler) GetTitle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	view, err := h.catalogService.View(id)
	if err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load title",
		})
	}

	return c.JSON(view)
}

func (h *CatalogHandler) GetGrade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	badge, err := h.catalogService.Grade(id)
	if err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resolve grade",
		})
	}

	return c.JSON(badge)
}

func (h *CatalogHandler) CreateTitle(c *fiber.Ctx) error {
	var req dto.CreateTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	title, err := h.catalogService.Create(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(title)
}

func (h *CatalogHandler) UpdateTitle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	var req dto.UpdateTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	title, err := h.catalogService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update title",
		})
	}

	return c.JSON(title)
}

func (h *CatalogHandler) DeleteTitle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	if err := h.catalogService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete title",
		})
	}

	return c.JSON(fiber.Map{"message": "Title deleted"})
}

func (h *CatalogHandler) SetRecommended(c *fiber.Ctx) error {
	return h.setFlag(c, h.catalogService.SetAdminRecommended)
}

func (h *CatalogHandler) SetVerified(c *fiber.Ctx) error {
	return h.setFlag(c, h.catalogService.SetVerifiedSafe)
}

func (h *CatalogHandler) setFlag(c *fiber.Ctx, set func(uuid.UUID, bool) error) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid title id",
		})
	}

	var req struct {
		Value bool `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := set(id, req.Value); err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Title not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update flag",
		})
	}

	return c.JSON(fiber.Map{"message": "Flag updated", "value": req.Value})
}

func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.catalogService.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load stats",
		})
	}
	return c.JSON(stats)
}
