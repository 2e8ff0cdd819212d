package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/services"
)

type MatchHandler struct {
	matchService *services.MatchService
	needService  *services.NeedService
}

func NewMatchHandler(matchService *services.MatchService, needService *services.NeedService) *MatchHandler {
	return &MatchHandler{matchService: matchService, needService: needService}
}

// FindMatches lists the available resources that can satisfy a need.
func (h *MatchHandler) FindMatches(c *fiber.Ctx) error {
	needID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid need ID"})
	}

	need, err := h.needService.Get(needID)
	if err != nil {
		if errors.Is(err, services.ErrNeedNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch need"})
	}

	matches, err := h.matchService.FindMatches(needID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to find matches"})
	}

	return c.JSON(dto.MatchesResponse{
		Need:    *need,
		Matches: matches,
		Count:   len(matches),
	})
}

// Match pairs a resource with a need. A lost race comes back as 409.
func (h *MatchHandler) Match(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if req.ResourceID == uuid.Nil || req.NeedID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "resource_id and need_id are required"})
	}

	if err := h.matchService.Match(req.ResourceID, req.NeedID); err != nil {
		if errors.Is(err, services.ErrResourceNotFound) || errors.Is(err, services.ErrNeedNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrMatchConflict) || errors.Is(err, services.ErrNotMatchable) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to match resource"})
	}

	return c.JSON(dto.MessageResponse{Message: "Resource matched successfully"})
}
