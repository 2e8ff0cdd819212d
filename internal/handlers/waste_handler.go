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

type WasteHandler struct {
	wasteService *services.WasteService
}

func NewWasteHandler(wasteService *services.WasteService) *WasteHandler {
	return &WasteHandler{wasteService: wasteService}
}

func (h *WasteHandler) CreateWasteReport(c *fiber.Ctx) error {
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.CreateWasteReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	report, err := h.wasteService.Create(callerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWasteType) || errors.Is(err, services.ErrInvalidSeverity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create waste report"})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *WasteHandler) ListWasteReports(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	filters := services.WasteFilters{
		Status:    c.Query("status"),
		WasteType: c.Query("waste_type"),
		Severity:  c.Query("severity"),
	}
	if raw := c.Query("reporter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid reporter_id"})
		}
		filters.ReporterID = &id
	}
	if raw := c.Query("hazardous"); raw != "" {
		hazardous, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid hazardous flag"})
		}
		filters.Hazardous = &hazardous
	}

	reports, err := h.wasteService.List(filters, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch waste reports"})
	}
	return c.JSON(reports)
}

func (h *WasteHandler) GetWasteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid report ID"})
	}

	report, err := h.wasteService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrWasteReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch waste report"})
	}
	return c.JSON(report)
}

func (h *WasteHandler) UpdateWasteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid report ID"})
	}

	var req dto.UpdateWasteReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	report, err := h.wasteService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrWasteReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidWasteType) || errors.Is(err, services.ErrInvalidSeverity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update waste report"})
	}
	return c.JSON(report)
}

func (h *WasteHandler) UpdateWasteReportStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid report ID"})
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	report, err := h.wasteService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrWasteReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update status"})
	}
	return c.JSON(report)
}

func (h *WasteHandler) DeleteWasteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid report ID"})
	}

	if err := h.wasteService.Delete(id); err != nil {
		if errors.Is(err, services.ErrWasteReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete waste report"})
	}
	return c.JSON(dto.MessageResponse{Message: "Waste report deleted successfully"})
}
