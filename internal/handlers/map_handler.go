package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/services"
)

type MapHandler struct {
	mapService *services.MapService
}

func NewMapHandler(mapService *services.MapService) *MapHandler {
	return &MapHandler{mapService: mapService}
}

func (h *MapHandler) GetMarkers(c *fiber.Ctx) error {
	markers, err := h.mapService.Markers(c.Query("filter", services.MapFilterAll))
	if err != nil {
		if errors.Is(err, services.ErrInvalidMapFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to build map markers"})
	}
	return c.JSON(markers)
}
