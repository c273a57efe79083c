package handlers

import (
	"errors"

	"github.com/doyoonkang/shortscout/internal/dto"
	"github.com/doyoonkang/shortscout/internal/middleware"
	"github.com/doyoonkang/shortscout/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChannelHandler struct {
	channelService *services.ChannelService
}

func NewChannelHandler(channelService *services.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

func (h *ChannelHandler) ListChannels(c *fiber.Ctx) error {
	channels, err := h.channelService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list channels",
		})
	}
	return c.JSON(fiber.Map{"channels": channels})
}

func (h *ChannelHandler) AddChannel(c *fiber.Ctx) error {
	var req dto.AddChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	channelID := req.ChannelID
	if channelID == "" && req.ChannelURL != "" {
		extracted, err := services.ExtractChannelID(req.ChannelURL)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		channelID = extracted
	}

	addedBy := ""
	if userID, ok := middleware.GetUserID(c); ok {
		addedBy = userID.String()
	}

	channel, err := h.channelService.Add(channelID, req.ChannelName, req.ChannelURL, req.RiskLevel, req.Reason, addedBy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChannelExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidRisk):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(channel)
}

func (h *ChannelHandler) RemoveChannel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid channel id",
		})
	}

	if err := h.channelService.Remove(id); err != nil {
		if errors.Is(err, services.ErrChannelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Channel not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove channel",
		})
	}

	return c.JSON(fiber.Map{"message": "Channel removed"})
}
