package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/middleware"
	"github.com/myhit051/hatyai-restart-sub000/internal/services"
)

type NeedHandler struct {
	needService *services.NeedService
}

func NewNeedHandler(needService *services.NeedService) *NeedHandler {
	return &NeedHandler{needService: needService}
}

func (h *NeedHandler) CreateNeed(c *fiber.Ctx) error {
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.CreateNeedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	need, err := h.needService.Create(callerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidResourceType) || errors.Is(err, services.ErrInvalidQuantity) ||
			errors.Is(err, services.ErrInvalidUrgency) || errors.Is(err, services.ErrInvalidVulnerability) ||
			errors.Is(err, services.ErrInvalidBeneficiaryCount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create need"})
	}

	return c.Status(fiber.StatusCreated).JSON(need)
}

func (h *NeedHandler) ListNeeds(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	var requesterID *uuid.UUID
	if raw := c.Query("requester_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid requester_id"})
		}
		requesterID = &id
	}

	needs, err := h.needService.List(c.Query("type"), c.Query("status"), requesterID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch needs"})
	}
	return c.JSON(needs)
}

func (h *NeedHandler) GetNeed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid need ID"})
	}

	need, err := h.needService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNeedNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch need"})
	}
	return c.JSON(need)
}

func (h *NeedHandler) UpdateNeed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid need ID"})
	}

	var req dto.UpdateNeedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	need, err := h.needService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNeedNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidQuantity) || errors.Is(err, services.ErrInvalidUrgency) ||
			errors.Is(err, services.ErrInvalidVulnerability) || errors.Is(err, services.ErrInvalidBeneficiaryCount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update need"})
	}
	return c.JSON(need)
}

func (h *NeedHandler) UpdateNeedStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid need ID"})
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	need, err := h.needService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNeedNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update status"})
	}
	return c.JSON(need)
}

func (h *NeedHandler) DeleteNeed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid need ID"})
	}

	if err := h.needService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNeedNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete need"})
	}
	return c.JSON(dto.MessageResponse{Message: "Need deleted successfully"})
}
